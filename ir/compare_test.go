package ir

import (
	"math"
	"testing"
	"time"
)

func TestCompareNumbers(t *testing.T) {
	hex := FromInt(16)
	hex.Number = "0x10"
	if !Equal(hex, FromInt(16)) {
		t.Error("expected 0x10 == 16")
	}
	if Equal(FromInt(1), FromFloat(1)) {
		t.Error("int 1 should differ from float 1")
	}
	if !Equal(FromFloat(math.NaN()), FromFloat(math.NaN())) {
		t.Error("expected NaN == NaN")
	}
	if Compare(FromInt(1), FromInt(2)) != -1 {
		t.Error("expected 1 < 2")
	}
	if !Equal(FromUint(math.MaxUint64), FromUint(math.MaxUint64)) {
		t.Error("expected big uints to be equal")
	}
}

func TestCompareTimes(t *testing.T) {
	a := time.Date(2001, 12, 14, 21, 59, 43, 0, time.UTC)
	b := a.In(time.FixedZone("x", 3600))
	if !Equal(FromTime(a), FromTime(b)) {
		t.Error("expected same instant to be equal")
	}
}

func TestCompareTags(t *testing.T) {
	if Equal(FromString("x").WithTag("!a"), FromString("x")) {
		t.Error("tag should distinguish nodes")
	}
	if !Equal(FromString("x").WithTag("!a"), FromString("x").WithTag("!a")) {
		t.Error("expected equal tagged nodes")
	}
}

func TestCompareContainers(t *testing.T) {
	ab := FromKeyVals([]KeyVal{
		{Key: FromString("a"), Val: FromInt(1)},
		{Key: FromString("b"), Val: FromInt(2)},
	})
	ba := FromKeyVals([]KeyVal{
		{Key: FromString("b"), Val: FromInt(2)},
		{Key: FromString("a"), Val: FromInt(1)},
	})
	if Equal(ab, ba) {
		t.Error("mapping order should be significant")
	}
	if !Equal(ab, ab.Clone()) {
		t.Error("clone should be equal")
	}
	if Equal(FromSlice(nil), FromKeyVals(nil)) {
		t.Error("empty sequence should differ from empty mapping")
	}
	s := FromSlice([]*Node{FromInt(1), Null()})
	if !Equal(s, FromSlice([]*Node{FromInt(1), Null()})) {
		t.Error("expected equal sequences")
	}
	if Equal(s, FromSlice([]*Node{FromInt(1)})) {
		t.Error("expected length to matter")
	}
}

func TestKeyID(t *testing.T) {
	keys := []*Node{
		Null(),
		FromBool(true),
		FromInt(1),
		FromFloat(1),
		FromString("1"),
		FromString("true"),
		FromString("1").WithTag("!k"),
	}
	seen := map[string]int{}
	for i, k := range keys {
		id := KeyID(k)
		if j, ok := seen[id]; ok {
			t.Errorf("keys %d and %d share id %q", i, j, id)
		}
		seen[id] = i
	}
	hex := FromInt(16)
	hex.Number = "0x10"
	if KeyID(hex) != KeyID(FromInt(16)) {
		t.Error("expected equal numbers to share a key id")
	}
}
