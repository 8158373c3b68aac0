package calc

import (
	"testing"

	"github.com/linyc74/cbioingest/internal/schema"
	"github.com/linyc74/cbioingest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(Config{Schema: schema.NycuOscc, Logger: testutil.NewTestLogger(t)})
}

func TestProcessRejectsUnknownField(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Process(map[string]string{"Mystery Column": "x"})
	require.Error(t, err)
	var ufe *schema.UnknownFieldError
	assert.ErrorAs(t, err, &ufe)
}

func TestProcessDoesNotMutateInput(t *testing.T) {
	e := newTestEngine(t)
	in := map[string]string{schema.ImmunotherapyDrug: "Nivolumab"}
	out, err := e.Process(in)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{schema.ImmunotherapyDrug: "Nivolumab"}, in)
	assert.Equal(t, "TRUE", out[schema.Immunotherapy])
}

func TestSurvivalAlive(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.LastFollowUpDate:               "2003-12-27",
	})
	require.NoError(t, err)

	assert.Equal(t, "12.0", out[schema.DiseaseFreeMonths])
	assert.Equal(t, schema.StatusDiseaseFree, out[schema.DiseaseFreeStatus])
	assert.Equal(t, "12.0", out[schema.DiseaseSpecificSurvivalMonths])
	assert.Equal(t, schema.StatusTumorFree, out[schema.DiseaseSpecificSurvivalStatus])
	assert.Equal(t, "12.0", out[schema.OverallSurvivalMonths])
	assert.Equal(t, schema.StatusLiving, out[schema.OverallSurvivalStatus])
}

func TestSurvivalDeceasedOfCancer(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.LastFollowUpDate:               "2003-12-27",
		schema.ExpireDate:                     "2003-12-27",
		schema.CauseOfDeath:                   "Cancer",
	})
	require.NoError(t, err)

	assert.Equal(t, schema.StatusRecurredProgressed, out[schema.DiseaseFreeStatus])
	assert.Equal(t, "12.0", out[schema.DiseaseSpecificSurvivalMonths])
	assert.Equal(t, schema.StatusDeadWithTumor, out[schema.DiseaseSpecificSurvivalStatus])
	assert.Equal(t, schema.StatusDeceased, out[schema.OverallSurvivalStatus])
}

func TestSurvivalDeceasedOfOtherDisease(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.ExpireDate:                     "2003-12-27",
		schema.CauseOfDeath:                   "Other Disease",
	})
	require.NoError(t, err)

	assert.Equal(t, schema.StatusDiseaseFree, out[schema.DiseaseFreeStatus])
	assert.Equal(t, schema.StatusTumorFree, out[schema.DiseaseSpecificSurvivalStatus])
	assert.Equal(t, schema.StatusDeceased, out[schema.OverallSurvivalStatus])
}

func TestSurvivalRecurrence(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.LastFollowUpDate:               "2004-06-01",
		schema.RecurDateAfterInitialTreatment: "2003-07-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "7.0", out[schema.DiseaseFreeMonths])
	assert.Equal(t, schema.StatusRecurredProgressed, out[schema.DiseaseFreeStatus])
}

func TestSurvivalUsesSurgicalDateWhenPresent(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.SurgicalExcisionDate:           "2003-01-01",
		schema.InitialTreatmentCompletionDate: "2003-02-01",
		schema.LastFollowUpDate:               "2003-12-27",
	})
	require.NoError(t, err)
	assert.Equal(t, "12.0", out[schema.OverallSurvivalMonths])
}

func TestSurvivalNegativeDurationBlanksBothFields(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.LastFollowUpDate:               "2002-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "", out[schema.OverallSurvivalMonths])
	assert.Equal(t, "", out[schema.OverallSurvivalStatus])
}

func TestSurvivalMissingBaselineBlanksBothFields(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.LastFollowUpDate: "2003-12-27",
	})
	require.NoError(t, err)

	assert.Equal(t, "", out[schema.OverallSurvivalMonths])
	assert.Equal(t, "", out[schema.OverallSurvivalStatus])
}

func TestSurvivalInvalidCauseOfDeath(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.ExpireDate:                     "2003-12-27",
		schema.CauseOfDeath:                   "Old Age",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid cause of death")
}

func TestDiagnosisAge(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.BirthDate:             "2000-01-01",
		schema.ClinicalDiagnosisDate: "2000-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.0", out[schema.ClinicalDiagnosisAge])
}

func TestICDExactMatch(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.TumorDiseaseAnatomicSite: "External upper lip",
	})
	require.NoError(t, err)
	assert.Equal(t, "C00.0", out[schema.ICDO3SiteCode])
	assert.Equal(t, "C00.0", out[schema.ICD10Classification])
}

func TestICDCaseInsensitiveMatch(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.TumorDiseaseAnatomicSite: "EXTERNAL UPPER LIP",
	})
	require.NoError(t, err)
	assert.Equal(t, "C00.0", out[schema.ICDO3SiteCode])
}

func TestICDFuzzyMatch(t *testing.T) {
	sites := DefaultSiteCodes()

	// "Upper lip area" shares two words with both "External upper lip"
	// and "Upper Lip"; the latter wins on matched fraction.
	assert.Equal(t, "C00.9", sites.ICDO3("Upper lip area"))
	assert.Equal(t, "C04.9", sites.ICDO3("floor of the mouth"))
	assert.Equal(t, "", sites.ICDO3("femur"))
	assert.Equal(t, "", sites.ICDO3(""))
}

func TestICDUnmatchedSiteLeavesCodesBlank(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.TumorDiseaseAnatomicSite: "xyzzy",
	})
	require.NoError(t, err)
	assert.Equal(t, "", out[schema.ICDO3SiteCode])
	assert.Equal(t, "", out[schema.ICD10Classification])
}

func TestStage(t *testing.T) {
	cases := []struct {
		tnm  string
		want string
	}{
		{"T1N0M0", "Stage I"},
		{"T2N0M0", "Stage II"},
		{"T3N0M0", "Stage III"},
		{"T2N1M0", "Stage III"},
		{"T4aN0M0", "Stage IVA"},
		{"T2N2bM0", "Stage IVA"},
		{"T4bN0M0", "Stage IVB"},
		{"T1N3M0", "Stage IVB"},
		{"T4bN3M1", "Stage IVC"},
		{"TisN0M0", "Stage 0"},
		{"T2NXMX", "Stage II"},
		{"T9N9M9", ""},
		{"garbage", ""},
		{"", ""},
	}

	e := newTestEngine(t)
	for _, c := range cases {
		out, err := e.Process(map[string]string{schema.ClinicalTNM: c.tnm})
		require.NoError(t, err, c.tnm)
		assert.Equal(t, c.want, out[schema.AJCCStage], c.tnm)
	}
}

func TestLymphNodesSynthesizeLevels(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.LymphNodeLevelIa:  "1/2",
		schema.LymphNodeLevelIb:  "0/3",
		schema.LymphNodeLevelIIa: "2/4",
		schema.LymphNodeLevelIII: "0/1",
	})
	require.NoError(t, err)

	assert.Equal(t, "1/5", out[schema.LymphNodeLevelI])
	assert.Equal(t, "2/4", out[schema.LymphNodeLevelII])
	assert.Equal(t, "3/10", out[schema.TotalLymphNode])
}

func TestLymphNodesNeverOverwrite(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.LymphNodeLevelI:  "9/9",
		schema.LymphNodeLevelIa: "1/2",
		schema.TotalLymphNode:   "5/50",
	})
	require.NoError(t, err)

	assert.Equal(t, "9/9", out[schema.LymphNodeLevelI])
	assert.Equal(t, "5/50", out[schema.TotalLymphNode])
}

func TestLymphNodesRightLeftFallback(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.LymphNodeRight: "1/10",
		schema.LymphNodeLeft:  "2/12",
	})
	require.NoError(t, err)
	assert.Equal(t, "3/22", out[schema.TotalLymphNode])
}

func TestLymphNodesBadCount(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Process(map[string]string{
		schema.LymphNodeLevelIII: "three",
	})
	assert.Error(t, err)
}

func TestTherapyFlags(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.NeoadjuvantChemotherapyDrug: "Cisplatin",
		schema.AdjuvantChemotherapyDrug:    "None",
		schema.ImmunotherapyDrug:           "",
	})
	require.NoError(t, err)

	assert.Equal(t, "TRUE", out[schema.NeoadjuvantChemotherapy])
	assert.Equal(t, "FALSE", out[schema.AdjuvantChemotherapy])
	assert.Equal(t, "FALSE", out[schema.Immunotherapy])
}

func TestCanonicalizeNormalizesValues(t *testing.T) {
	e := newTestEngine(t)
	out, err := e.Process(map[string]string{
		schema.SurgicalExcisionDate: "2020/1/1",
		"Patient Weight (Kg)":       "70",
	})
	require.NoError(t, err)

	assert.Equal(t, "2020-01-01", out[schema.SurgicalExcisionDate])
	assert.Equal(t, "70.0", out["Patient Weight (Kg)"])
}

func TestProcessIsIdempotent(t *testing.T) {
	e := newTestEngine(t)
	once, err := e.Process(map[string]string{
		schema.InitialTreatmentCompletionDate: "2003-01-01",
		schema.LastFollowUpDate:               "2003-12-27",
		schema.TumorDiseaseAnatomicSite:       "Hard palate",
		schema.ClinicalTNM:                    "T2N0M0",
		schema.LymphNodeLevelIa:               "1/2",
	})
	require.NoError(t, err)

	twice, err := e.Process(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestEngineWorksWithSchemasLackingDerivedFields(t *testing.T) {
	e := New(Config{Schema: schema.VghtpeHnscc, Logger: testutil.NewTestLogger(t)})
	out, err := e.Process(map[string]string{
		"Study_num": "H0001",
		"T":         "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "H0001", out["Study_num"])
}
