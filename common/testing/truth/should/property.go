// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package should

import (
	"reflect"

	"github.com/verity-go/verity/common/testing/truth/comparison"
	"github.com/verity-go/verity/common/testing/truth/failure"
)

var errorType = reflect.TypeFor[error]()

// lookupProperty finds the exported field or getter method `name` on
// `actual`.
//
// Getter methods take no arguments and return either one value, or a value
// and an error. Methods are looked up on the value and, if it is addressable
// or a pointer, its pointer receiver.
func lookupProperty(cmpName string, actual any, name string) (reflect.Value, *failure.Summary) {
	if actual == nil {
		return reflect.Value{}, comparison.NewSummaryBuilder(cmpName).
			Because("untyped nil has no properties").
			Summary
	}

	v := reflect.ValueOf(actual)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.Value{}, comparison.NewSummaryBuilder(cmpName).
			Because("`%T` is nil", actual).
			Summary
	}
	if m := v.MethodByName(name); m.IsValid() {
		if val, ok := callGetter(m); ok {
			return val, nil
		}
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, comparison.NewSummaryBuilder(cmpName).
				Because("`%T` is nil", actual).
				Summary
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Struct {
		if f, ok := v.Type().FieldByName(name); ok && f.IsExported() {
			return v.FieldByIndex(f.Index), nil
		}
	}

	return reflect.Value{}, comparison.NewSummaryBuilder(cmpName).
		Because("`%T` has no property %q", actual, name).
		Summary
}

func callGetter(m reflect.Value) (reflect.Value, bool) {
	mt := m.Type()
	if mt.NumIn() != 0 {
		return reflect.Value{}, false
	}
	switch {
	case mt.NumOut() == 1:
		return m.Call(nil)[0], true
	case mt.NumOut() == 2 && mt.Out(1) == errorType:
		out := m.Call(nil)
		if !out[1].IsNil() {
			return reflect.Value{}, false
		}
		return out[0], true
	}
	return reflect.Value{}, false
}

// HaveProperty returns a comparison.Func which checks that the actual value has
// an exported field or getter method named `name`.
//
// Example:
//
//	assert.That(t, book, should.HaveProperty("Title"))
func HaveProperty(name string) comparison.Func[any] {
	const cmpName = "should.HaveProperty"
	return func(actual any) *failure.Summary {
		_, ret := lookupProperty(cmpName, actual, name)
		return ret
	}
}

// HavePropertyThat returns a comparison.Func which checks that the actual
// value has a property `name` whose value passes `compare`.
//
// `compare` is any comparison function accepted by comparison.Erase; the
// property value must convert losslessly to its argument type.
//
// Example:
//
//	assert.That(t, book, should.HavePropertyThat("Pages", should.BeGreaterThan(100)))
func HavePropertyThat(name string, compare any) comparison.Func[any] {
	const cmpName = "should.HavePropertyThat"
	caster := comparison.Erase(compare)
	return func(actual any) *failure.Summary {
		prop, ret := lookupProperty(cmpName, actual, name)
		if ret != nil {
			return ret
		}
		inner := caster.CastCompare(prop.Interface())
		if inner == nil {
			return nil
		}
		sb := comparison.NewSummaryBuilder(cmpName, actual).
			Because("Property %q did not match.", name)
		addNested(sb, "Property", inner)
		return sb.Summary
	}
}
