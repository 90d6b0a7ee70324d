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

package comparison

import (
	"fmt"
	"reflect"

	"github.com/verity-go/verity/common/testing/truth/failure"
)

var summaryPtrType = reflect.TypeFor[*failure.Summary]()

// Erase returns `fn` as a Caster.
//
// `fn` is either a Caster already (e.g. any Func[T]), or a plain function of
// the shape `func(T) *failure.Summary` such as `should.BeNil` or
// `should.HaveUniqueItems[int]`. Plain functions are called via reflection,
// with the same lossless conversion rules as Func.CastCompare.
//
// Panics if `fn` has any other type.
func Erase(fn any) Caster {
	if c, ok := fn.(Caster); ok {
		return c
	}
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Errorf("comparison.Erase: %T is not a comparison function", fn))
	}
	t := v.Type()
	if t.NumIn() != 1 || t.IsVariadic() || t.NumOut() != 1 || t.Out(0) != summaryPtrType {
		panic(fmt.Errorf("comparison.Erase: %s is not a comparison function", t))
	}
	return erased{v}
}

type erased struct {
	fn reflect.Value
}

func (e erased) CastCompare(actual any) *failure.Summary {
	target := e.fn.Type().In(0)

	var arg reflect.Value
	switch {
	case actual == nil:
		if !isNillable(target.Kind()) {
			return castFailureTo(target, actual)
		}
		arg = reflect.Zero(target)
	case reflect.TypeOf(actual).AssignableTo(target):
		arg = reflect.ValueOf(actual)
	default:
		converted, ok := losslessConvert(reflect.ValueOf(actual), target)
		if !ok {
			return castFailureTo(target, actual)
		}
		arg = converted
	}

	ret, _ := e.fn.Call([]reflect.Value{arg})[0].Interface().(*failure.Summary)
	return ret
}
