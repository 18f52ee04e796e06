package gomap

import (
	"reflect"
	"strings"
)

type fieldInfo struct {
	index     []int
	name      string
	omitEmpty bool
}

// structFields returns the mapped fields of struct type t in declaration
// order. Embedded structs without a yaml name, and fields tagged
// ",inline", contribute their own fields in place.
func structFields(t reflect.Type) []fieldInfo {
	var res []fieldInfo
	for i := range t.NumField() {
		f := t.Field(i)
		tag := f.Tag.Get("yaml")
		if tag == "-" || !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		inline := hasOpt(opts, "inline") || (f.Anonymous && name == "")
		if inline && f.Type.Kind() == reflect.Struct {
			for _, sub := range structFields(f.Type) {
				sub.index = append([]int{i}, sub.index...)
				res = append(res, sub)
			}
			continue
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, fieldInfo{
			index:     []int{i},
			name:      name,
			omitEmpty: hasOpt(opts, "omitempty"),
		})
	}
	return res
}

func hasOpt(opts, opt string) bool {
	for o := range strings.SplitSeq(opts, ",") {
		if o == opt {
			return true
		}
	}
	return false
}
