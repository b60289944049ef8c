/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package value

import (
	"encoding/json"
	"math"
	"testing"
)

func TestConvertScalars(t *testing.T) {
	doc := map[string]interface{}{
		"null":   nil,
		"bool":   true,
		"string": "hello",
	}

	v := Convert(doc)
	if v.Kind() != KindObject {
		t.Fatalf("Expected object, got kind %d", v.Kind())
	}

	if f, _ := v.Field("null"); !f.IsNull() {
		t.Error("Expected null field to convert to null")
	}
	if f, _ := v.Field("bool"); f.Kind() != KindBool || !f.BoolValue() {
		t.Error("Expected bool field to convert unchanged")
	}
	if f, _ := v.Field("string"); f.Kind() != KindString || f.StringValue() != "hello" {
		t.Error("Expected string field to convert unchanged")
	}
}

func TestConvertIntegerInRange(t *testing.T) {
	// JSON decoding yields float64 for numbers
	v := convert(float64(5))
	if v.Kind() != KindInt {
		t.Fatalf("Expected int, got kind %d", v.Kind())
	}
	if v.IntValue() != 5 {
		t.Errorf("Expected 5, got %d", v.IntValue())
	}
}

func TestConvertIntegerClampsAboveMax(t *testing.T) {
	cases := []interface{}{
		float64(3000000000),
		int64(3000000000),
		uint64(3000000000),
		json.Number("3000000000"),
	}
	for _, c := range cases {
		v := convert(c)
		if v.Kind() != KindInt {
			t.Fatalf("%T: expected int, got kind %d", c, v.Kind())
		}
		if v.IntValue() != math.MaxInt32 {
			t.Errorf("%T: expected clamp to %d, got %d", c, math.MaxInt32, v.IntValue())
		}
	}
}

func TestConvertIntegerClampsBelowMin(t *testing.T) {
	cases := []interface{}{
		float64(-3000000000),
		int64(-3000000000),
		json.Number("-3000000000"),
	}
	for _, c := range cases {
		v := convert(c)
		if v.Kind() != KindInt {
			t.Fatalf("%T: expected int, got kind %d", c, v.Kind())
		}
		if v.IntValue() != math.MinInt32 {
			t.Errorf("%T: expected clamp to %d, got %d", c, math.MinInt32, v.IntValue())
		}
	}
}

func TestConvertNonIntegralPassesThrough(t *testing.T) {
	v := convert(float64(1.5))
	if v.Kind() != KindFloat {
		t.Fatalf("Expected float, got kind %d", v.Kind())
	}
	if v.FloatValue() != 1.5 {
		t.Errorf("Expected 1.5, got %v", v.FloatValue())
	}

	v = convert(json.Number("1.5"))
	if v.Kind() != KindFloat || v.FloatValue() != 1.5 {
		t.Errorf("Expected json.Number 1.5 to pass through, got kind %d value %v",
			v.Kind(), v.FloatValue())
	}
}

func TestConvertNestedStructures(t *testing.T) {
	doc := map[string]interface{}{
		"name": "outer",
		"inner": map[string]interface{}{
			"tags": []interface{}{float64(1), float64(2), "three"},
		},
	}

	v := Convert(doc)
	inner, ok := v.Field("inner")
	if !ok || inner.Kind() != KindObject {
		t.Fatal("Expected inner object")
	}

	tags, ok := inner.Field("tags")
	if !ok || tags.Kind() != KindList {
		t.Fatal("Expected tags list")
	}
	if tags.Len() != 3 {
		t.Fatalf("Expected 3 items, got %d", tags.Len())
	}

	items := tags.ListValue()
	if items[0].IntValue() != 1 || items[1].IntValue() != 2 {
		t.Error("Expected numeric items to convert in order")
	}
	if items[2].StringValue() != "three" {
		t.Error("Expected string item to convert in order")
	}
}

func TestConvertUnknownShapeDegradesToNull(t *testing.T) {
	v := convert(struct{ X int }{X: 1})
	if !v.IsNull() {
		t.Error("Expected unknown shape to degrade to null")
	}
}

func TestMarshalJSONDeterministic(t *testing.T) {
	v := Convert(map[string]interface{}{
		"b": float64(2),
		"a": "one",
		"c": []interface{}{nil, true, float64(1.5)},
	})

	first, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("Expected identical JSON across marshals")
	}

	expected := `{"a":"one","b":2,"c":[null,true,1.5]}`
	if string(first) != expected {
		t.Errorf("Expected %s, got %s", expected, string(first))
	}
}
