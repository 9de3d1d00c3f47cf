package json_test

import (
	stdjson "encoding/json"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/kkjson/json"

	"github.com/bytedance/sonic"
)

const beatlesFixture = `{
	"name": "The Beatles",
	"type": "band",
	"formed": 1960,
	"active": false,
	"members": [
		{"name": "John", "role": "guitar"},
		{"name": "Paul", "role": "bass"},
		{"name": "George", "role": "guitar"},
		{"name": "Ringo", "role": "drums"}
	]
}`

var benchFixtures = map[string]string{
	"scalar": `3.14159`,
	"flat":   `[1, 2, 3, 4, 5, 6, 7, 8, 9, 10]`,
	"nested": beatlesFixture,
}

func BenchmarkParse(b *testing.B) {
	for name, fixture := range benchFixtures {
		data := []byte(fixture)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := json.Parse(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseStdlib(b *testing.B) {
	for name, fixture := range benchFixtures {
		data := []byte(fixture)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var v any
				if err := stdjson.Unmarshal(data, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseJSONIterator(b *testing.B) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	for name, fixture := range benchFixtures {
		data := []byte(fixture)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var v any
				if err := api.Unmarshal(data, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParseSonic(b *testing.B) {
	for name, fixture := range benchFixtures {
		data := []byte(fixture)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var v any
				if err := sonic.Unmarshal(data, &v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
