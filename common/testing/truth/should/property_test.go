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
	"errors"
	"testing"
)

type book struct {
	Title  string
	Pages  int
	secret string
}

func (b book) Words() int { return b.Pages * 300 }

func (b *book) Slug() string { return "slug:" + b.Title }

func (b book) Publisher() (string, error) { return "", errors.New("unknown") }

func TestHaveProperty(t *testing.T) {
	t.Parallel()

	b := book{Title: "Go", Pages: 10}

	t.Run("field", shouldPass(HaveProperty("Title")(b)))
	t.Run("field through pointer", shouldPass(HaveProperty("Pages")(&b)))
	t.Run("method", shouldPass(HaveProperty("Words")(b)))
	t.Run("pointer method", shouldPass(HaveProperty("Slug")(&b)))

	t.Run("unexported", shouldFail(HaveProperty("secret")(b), `has no property "secret"`))
	t.Run("missing", shouldFail(HaveProperty("Author")(b), `has no property "Author"`))
	t.Run("getter error", shouldFail(HaveProperty("Publisher")(b), "no property"))
	t.Run("nil", shouldFail(HaveProperty("Title")(nil), "untyped nil"))
	t.Run("nil pointer", shouldFail(HaveProperty("Title")((*book)(nil)), "is nil"))
}

func TestHavePropertyThat(t *testing.T) {
	t.Parallel()

	b := &book{Title: "Go", Pages: 10}

	t.Run("field", shouldPass(HavePropertyThat("Pages", BeGreaterThan(5))(b)))
	t.Run("method", shouldPass(HavePropertyThat("Words", Equal(3000))(b)))
	t.Run("string field", shouldPass(HavePropertyThat("Title", HavePrefix("G"))(b)))
	t.Run("plain comparison", shouldPass(HavePropertyThat("Title", NotBeEmpty)(b)))

	t.Run("fail", shouldFail(HavePropertyThat("Pages", BeGreaterThan(50))(b),
		`Property "Pages" did not match`, "Property Actual: 10"))
	t.Run("wrong type", shouldFail(HavePropertyThat("Title", Equal(3))(b), "builtin.LosslessConvertTo"))
}
