package xgxsubtype

import (
	"errors"
	"fmt"
	"testing"
)

var (
	benchErr  error
	benchType = Root.Subtype("BenchParent").Subtype("BenchLeaf", Template("{{op}} failed on {{host}}"))
)

func BenchmarkNew_NoDetails(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		benchErr = benchType.New()
	}
}

func BenchmarkNew_MapDetails(b *testing.B) {
	d := map[string]any{"op": "get", "host": "db1"}
	b.ReportAllocs()
	for b.Loop() {
		benchErr = benchType.New(d)
	}
}

func BenchmarkNew_StructDetails(b *testing.B) {
	d := struct {
		Op   string `mapstructure:"op"`
		Host string `mapstructure:"host"`
	}{"get", "db1"}
	b.ReportAllocs()
	for b.Loop() {
		benchErr = benchType.New(d)
	}
}

func BenchmarkSwitch_DeepLineage(b *testing.B) {
	types := chain("Bench", 8)
	e := types[len(types)-1].New()
	cases := Cases[int]{"BaseError": func(any) int { return 1 }}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Switch(e, cases); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDefaultTemplater(b *testing.B) {
	d := map[string]any{"op": "get", "host": "db1"}
	b.ReportAllocs()
	for b.Loop() {
		_ = DefaultTemplater("{{op}} failed on {{{host}}}", d)
	}
}

func BenchmarkFind_Wrapped(b *testing.B) {
	err := fmt.Errorf("outer: %w", errors.Join(errors.New("a"), benchType.New()))
	b.ReportAllocs()
	for b.Loop() {
		if _, ok := Find(err, benchType); !ok {
			b.Fatal("not found")
		}
	}
}
