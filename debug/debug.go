package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Render bool
	Parse  bool
	Map    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Render = boolEnv("CLEANYAML_DEBUG_RENDER")
	d.Parse = boolEnv("CLEANYAML_DEBUG_PARSE")
	d.Map = boolEnv("CLEANYAML_DEBUG_MAP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Render() bool {
	return d.Render
}
func Parse() bool {
	return d.Parse
}
func Map() bool {
	return d.Map
}
