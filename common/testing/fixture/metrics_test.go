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

package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/verity-go/verity/common/testing/truth/assert"
	"github.com/verity-go/verity/common/testing/truth/should"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	report, _ := runDemo(t, &Runner{})
	m := NewMetrics()
	m.Observe(report)

	assert.That(t, testutil.ToFloat64(m.testsTotal.WithLabelValues("demo", "passed")), should.Equal(3.0))
	assert.That(t, testutil.ToFloat64(m.testsTotal.WithLabelValues("demo", "failed")), should.Equal(4.0))
	assert.That(t, testutil.ToFloat64(m.testsTotal.WithLabelValues("demo", "ignored")), should.Equal(1.0))
	assert.That(t, testutil.CollectAndCount(m.testsTotal), should.Equal(4))
	assert.That(t, testutil.CollectAndCount(m.testDuration), should.Equal(1))

	path := filepath.Join(t.TempDir(), "verity.prom")
	assert.NoErr(t, m.WriteToTextfile(path))
	blob, err := os.ReadFile(path)
	assert.NoErr(t, err)
	assert.That(t, string(blob), should.ContainSubstring(`verity_tests_total{fixture="demo",outcome="errored"} 2`))
	assert.That(t, string(blob), should.ContainSubstring("verity_test_duration_seconds_count{fixture=\"demo\"} 9"))

	assert.ErrIsLike(t, m.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")), "writing metrics")
}
