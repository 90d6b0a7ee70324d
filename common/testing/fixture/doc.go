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

// Package fixture runs fixtures: structs whose exported `Test*` methods are
// the tests.
//
// A fixture is registered with a factory, usually from an init function:
//
//	func init() {
//	  fixture.Register("SampleFixture", func() any { return &SampleFixture{} })
//	}
//
// Every test gets a fresh instance from the factory. Before the test the
// runner calls Bind (if the fixture is a Binder) and SetUp (if a SetUpper);
// after it, TearDown (if a TearDowner), even when the test failed.
//
// A test method takes either no arguments, or a single truth.TestingTB:
//
//	func (f *SampleFixture) TestAdd(t truth.TestingTB) {
//	  classic.AreEqual(t, 5, f.value1+f.value2)
//	}
//
// Fixtures may attach annotations to their tests by implementing Annotated:
//
//	func (*SampleFixture) Annotations() fixture.Annotations {
//	  return fixture.Annotations{
//	    "Ignored":           {fixture.Ignore("ignored test")},
//	    "ExpectAnException": {fixture.ExpectPanic[*runtime.TypeAssertionError]()},
//	  }
//	}
//
// Tests are named by their method name without the "Test" prefix.
package fixture
