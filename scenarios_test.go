// Copyright ©2024 The Bezcol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bezcol

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/numgo/bezcol/field"
	"github.com/numgo/bezcol/field/bigfloat"
	"github.com/numgo/bezcol/mesh"
)

type scenario struct {
	Name            string  `yaml:"name"`
	Description     string  `yaml:"description"`
	K               int     `yaml:"k"`
	L               int     `yaml:"l"`
	S               float64 `yaml:"s"`
	T               float64 `yaml:"t"`
	Eps             float64 `yaml:"eps"`
	P               float64 `yaml:"p"`
	Q               float64 `yaml:"q"`
	F               float64 `yaml:"f"`
	Eta1            float64 `yaml:"eta1"`
	Eta2            float64 `yaml:"eta2"`
	Mesh            string  `yaml:"mesh"`
	PrecisionDigits int     `yaml:"precisionDigits"`
}

// precision returns the scenario's recorded working precision, or 30
// digits if the scenario did not specify one.
func (sc scenario) precision() int {
	if sc.PrecisionDigits > 0 {
		return sc.PrecisionDigits
	}
	return 30
}

type scenarioFile struct {
	Scenarios []scenario `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) map[string]scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var sf scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &sf))

	byName := make(map[string]scenario, len(sf.Scenarios))
	for _, s := range sf.Scenarios {
		byName[s.Name] = s
	}
	return byName
}

// TestScenarioFileDrivesUniformProblems replays the uniform-mesh
// scenarios named in testdata/scenarios.yaml end to end, confirming the
// recorded parameters still assemble and solve without error.
func TestScenarioFileDrivesUniformProblems(t *testing.T) {
	scenarios := loadScenarios(t)

	for _, name := range []string{"S1-classical-cosh", "S5-degenerate-k1", "S7-single-segment"} {
		sc, ok := scenarios[name]
		require.True(t, ok, "missing scenario %s", name)
		if sc.Mesh != "uniform" {
			t.Fatalf("scenario %s: expected uniform mesh, got %s", name, sc.Mesh)
		}

		F := bigfloat.New(sc.precision())
		m, err := mesh.Uniform(F, sc.L, F.FromFloat64(sc.S), F.FromFloat64(sc.T))
		require.NoError(t, err, name)

		_, err = Solve(F, sc.K, m, F.FromFloat64(sc.Eps), F.FromFloat64(sc.Eta1), F.FromFloat64(sc.Eta2),
			constFn(F, sc.P), constFn(F, sc.Q), constFn(F, sc.F))
		require.NoError(t, err, name)
	}
}

// TestScenarioFileSingularCaseFails replays S6, whose eps=p=q=0
// parameters collapse every collocation row to zero.
func TestScenarioFileSingularCaseFails(t *testing.T) {
	scenarios := loadScenarios(t)
	sc, ok := scenarios["S6-singular-system"]
	require.True(t, ok)

	F := bigfloat.New(30)
	m, err := mesh.Uniform(F, sc.L, F.FromFloat64(sc.S), F.FromFloat64(sc.T))
	require.NoError(t, err)

	var zero field.Scalar = F.Zero()
	_, err = Solve(F, sc.K, m, F.Zero(), zero, zero, constFn(F, 0), constFn(F, 0), constFn(F, 0))
	require.Error(t, err)
}
