package schema

// Column names of the NYCU OSCC schema that other packages reference.
const (
	SampleID  = "Sample ID"
	PatientID = "Patient ID"

	BirthDate             = "Birth Date"
	ClinicalDiagnosisDate = "Clinical Diagnosis Date"
	ClinicalDiagnosisAge  = "Clinical Diagnosis Age"

	SurgicalExcisionDate           = "Surgical Excision Date"
	InitialTreatmentCompletionDate = "Initial Treatment Completion Date"
	LastFollowUpDate               = "Last Follow-up Date"
	RecurDateAfterInitialTreatment = "Recur Date after Initial Treatment"
	ExpireDate                     = "Expire Date"
	CauseOfDeath                   = "Cause of Death"
	DiseaseFreeMonths              = "Disease Free (Months)"
	DiseaseFreeStatus              = "Disease Free Status"
	DiseaseSpecificSurvivalMonths  = "Disease-specific Survival (Months)"
	DiseaseSpecificSurvivalStatus  = "Disease-specific Survival Status"
	OverallSurvivalMonths          = "Overall Survival (Months)"
	OverallSurvivalStatus          = "Overall Survival Status"

	TumorDiseaseAnatomicSite = "Tumor Disease Anatomic Site"
	ICDO3SiteCode            = "ICD-O-3 Site Code"
	ICD10Classification      = "ICD-10 Classification"

	LymphNodeLevelI   = "Lymph Node Level I"
	LymphNodeLevelIa  = "Lymph Node Level Ia"
	LymphNodeLevelIb  = "Lymph Node Level Ib"
	LymphNodeLevelII  = "Lymph Node Level II"
	LymphNodeLevelIIa = "Lymph Node Level IIa"
	LymphNodeLevelIIb = "Lymph Node Level IIb"
	LymphNodeLevelIII = "Lymph Node Level III"
	LymphNodeLevelIV  = "Lymph Node Level IV"
	LymphNodeLevelV   = "Lymph Node Level V"
	LymphNodeRight    = "Lymph Node (Right)"
	LymphNodeLeft     = "Lymph Node (Left)"
	TotalLymphNode    = "Total Lymph Node"

	ClinicalTNM     = "Clinical TNM (cTNM)"
	PathologicalTNM = "Pathological TNM (pTNM)"
	AJCCStage       = "Neoplasm Disease Stage American Joint Committee on Cancer Code"

	NeoadjuvantChemotherapy       = "Neoadjuvant/Induction Chemotherapy"
	NeoadjuvantChemotherapyDrug   = "Neoadjuvant/Induction Chemotherapy Drug"
	AdjuvantChemotherapy          = "Adjuvant Chemotherapy"
	AdjuvantChemotherapyDrug      = "Adjuvant Chemotherapy Drug"
	PalliativeChemotherapy        = "Palliative Chemotherapy"
	PalliativeChemotherapyDrug    = "Palliative Chemotherapy Drug"
	AdjuvantTargetedTherapy       = "Adjuvant Targeted Therapy"
	AdjuvantTargetedTherapyDrug   = "Adjuvant Targeted Therapy Drug"
	PalliativeTargetedTherapy     = "Palliative Targeted Therapy"
	PalliativeTargetedTherapyDrug = "Palliative Targeted Therapy Drug"
	Immunotherapy                 = "Immunotherapy"
	ImmunotherapyDrug             = "Immunotherapy Drug"
)

// Survival status labels written by the calculation engine.
const (
	StatusDiseaseFree        = "DiseaseFree"
	StatusRecurredProgressed = "Recurred/Progressed"
	StatusTumorFree          = "Alive or dead tumor-free"
	StatusDeadWithTumor      = "Dead with tumor"
	StatusLiving             = "Living"
	StatusDeceased           = "Deceased"
)

var tnmOptions = []string{
	"T1N0M0", "TisN0M0", "T2N0M0", "T3N0M0", "T1N1M0", "T2N1M0", "T3N1M0",
	"T4aN0M0", "T4aN1M0", "T1N2M0", "T2N2M0", "T3N2M0", "T4aN2M0",
	"T1N3M0", "T2N3M0", "T3N3M0", "T4aN3M0",
	"T4bN0M0", "T4bN1M0", "T4bN2M0", "T4bN3M0", "T4bN3M1",
}

var habitOptions = []string{"Current", "Ex", "Never", "Denied"}

var habitFrequencyOptions = []string{"0.0", "Occasional", "Social", "Heavy"}

var lymphCountOptions = []string{"0/0", ""}

var pdl1Options = []string{"> 50%", "< 50%", "NA"}

// NycuOscc is the NYCU oral squamous cell carcinoma registry, the richest
// of the built-in schemas and the only one with derived fields.
var NycuOscc = register(New("NYCU OSCC",
	[]Field{
		{Name: SampleID, Kind: String, Options: []string{"000-00000-0000-E-X00-00"}},
		{Name: "Medical Record ID", Kind: String, Drop: true},
		{Name: "Pathological Record ID", Kind: String, Drop: true},
		{Name: "Patient Name", Kind: String, Drop: true},
		{Name: "Lab ID", Kind: String, Options: []string{"XXX_LAB"}},
		{Name: "Lab Sample ID", Kind: String, Options: []string{"VGH_001_T", "NYCUH_001_T"}, Drop: true},
		{Name: SurgicalExcisionDate, Kind: Date, Options: []string{"2020-01-01"}},
		{Name: "Sex", Kind: String, Options: []string{"Male", "Female"}, PatientLevel: true},
		{Name: "Patient Weight (Kg)", Kind: Float, PatientLevel: true},
		{Name: "Patient Height (cm)", Kind: Float, PatientLevel: true},
		{Name: "Ethnicity Category", Kind: String, Options: []string{"Han", "Aboriginal"}, PatientLevel: true},
		{Name: BirthDate, Kind: Date, Options: []string{"1900-01-01"}, Drop: true},
		{Name: ClinicalDiagnosisDate, Kind: Date, Options: []string{"2020-01-01"}, Drop: true},
		{Name: ClinicalDiagnosisAge, Kind: Float, Derived: true},
		{Name: "Pathological Diagnosis Date", Kind: Date, Options: []string{"2020-01-01"}, Drop: true},
		{Name: "Cancer Type", Kind: String, Options: []string{"Head and Neck Cancer"}},
		{Name: "Cancer Type Detailed", Kind: String, Options: []string{
			"Head and Neck Squamous Cell Carcinoma",
			"Oral Cavity Squamous Cell Carcinoma",
			"Salivary Carcinoma",
			"Mucoepideroid Carcinoma",
		}},
		{Name: "Sample Type", Kind: String, Options: []string{"Primary", "Precancer", "Recurrent"}},
		{Name: "Oncotree Code", Kind: String, Options: []string{"OCSC", "OPHSC"}},
		{Name: "Somatic Status", Kind: String, Options: []string{"Matched Adjacent Normal", "Matched Blood Normal", "Tumor Only"}},
		{Name: "Center", Kind: String, Options: []string{"Taipei Veterans General Hospital", "National Yang Ming Chiao Tung University Hospital"}},
		{Name: TumorDiseaseAnatomicSite, Kind: String, Options: []string{
			"Retromolar Triangle",
			"Right Tongue",
			"Left Tongue",
			"Cross Midline (CM) Tongue",
			"Left Upper Gingiva",
			"Left Lower Gingiva",
			"Right Upper Gingiva",
			"Right Lower Gingiva",
			"Cross Midline (CM) Left Upper Gingiva",
			"Cross Midline (CM) Right Lower Gingiva",
			"Cross Midline (CM) Gingiva",
			"Left Palate",
			"Right Palate",
			"Cross Midline (CM) Palate",
			"Upper Lip",
			"Lower Lip",
			"External Upper Lip",
			"External Lower Lip",
			"Upper Lip Inner Aspect",
			"Lower Lip Inner Aspect",
			"Cross Midline (CM) Lip",
			"Left Buccal Mucosa",
			"Right Buccal Mucosa",
		}},
		{Name: ICDO3SiteCode, Kind: String, Derived: true},
		{Name: "Alcohol Consumption", Kind: String, Options: habitOptions, PatientLevel: true},
		{Name: "Alcohol Consumption Frequency (Bottles Per Day)", Kind: String, Options: habitFrequencyOptions, PatientLevel: true},
		{Name: "Alcohol Consumption Duration (Years)", Kind: Float, PatientLevel: true},
		{Name: "Alcohol Consumption Quit (Years)", Kind: Float, PatientLevel: true},
		{Name: "Betel Nut Chewing", Kind: String, Options: habitOptions, PatientLevel: true},
		{Name: "Betel Nut Chewing Frequency (Pieces Per Day)", Kind: String, Options: habitFrequencyOptions, PatientLevel: true},
		{Name: "Betel Nut Chewing Duration (Years)", Kind: Float, PatientLevel: true},
		{Name: "Betel Nut Chewing Quit (Years)", Kind: Float, PatientLevel: true},
		{Name: "Cigarette Smoking", Kind: String, Options: habitOptions, PatientLevel: true},
		{Name: "Cigarette Smoking Frequency (Packs Per Day)", Kind: String, Options: habitFrequencyOptions, PatientLevel: true},
		{Name: "Cigarette Smoking Duration (Years)", Kind: Float, PatientLevel: true},
		{Name: "Cigarette Smoking Quit (Years)", Kind: Float, PatientLevel: true},
		{Name: "Histologic Grade", Kind: String, Options: []string{
			"Well Differentiated", "Moderately Differentiated", "Poorly Differentiated", "Undifferentated Anaplastic",
		}},
		{Name: "Surgery", Kind: String, Options: []string{"Wide Excision", "Neck Dissection", "Wide Excision and Neck Dissection"}},
		{Name: NeoadjuvantChemotherapy, Kind: Bool, Derived: true},
		{Name: NeoadjuvantChemotherapyDrug, Kind: String, Options: chemoDrugOptions},
		{Name: AdjuvantChemotherapy, Kind: Bool, Derived: true},
		{Name: AdjuvantChemotherapyDrug, Kind: String, Options: []string{
			"Cisplatin, Mitomycin, 5-FU (PMU)",
			"Cisplatin, 5-FU, Leucovorin (PFL)",
			"None",
			"Cisplatin",
			"5-FU",
			"Docetaxel",
			"Cisplatin, 5-FU",
			"Cisplatin, Docetaxel",
			"Docetaxel, Cisplatin, 5-FU (TPF)",
		}},
		{Name: PalliativeChemotherapy, Kind: Bool, Derived: true},
		{Name: PalliativeChemotherapyDrug, Kind: String, Options: chemoDrugOptions},
		{Name: AdjuvantTargetedTherapy, Kind: Bool, Derived: true},
		{Name: AdjuvantTargetedTherapyDrug, Kind: String, Options: targetedDrugOptions},
		{Name: PalliativeTargetedTherapy, Kind: Bool, Derived: true},
		{Name: PalliativeTargetedTherapyDrug, Kind: String, Options: targetedDrugOptions},
		{Name: Immunotherapy, Kind: Bool, Derived: true},
		{Name: ImmunotherapyDrug, Kind: String, Options: []string{"", "None", "Pembrolizumab", "Nivolumab"}},
		{Name: "Radiation Therapy", Kind: String, Options: []string{"Adjuvant", "None", "Definitive", "Palliative"}},
		{Name: "Radiation Therapy Dose (cGY)", Kind: Float, Options: []string{"6600.0", "0.0"}},
		{Name: "IHC Anti-PDL1 mAb 22C3 TPS (%)", Kind: String, Options: pdl1Options},
		{Name: "IHC Anti-PDL1 mAb 22C3 CPS (%)", Kind: String, Options: pdl1Options},
		{Name: "IHC Anti-PDL1 mAb 28-8 TPS (%)", Kind: String, Options: pdl1Options},
		{Name: "IHC Anti-PDL1 mAb 28-8 CPS (%)", Kind: String, Options: pdl1Options},
		{Name: LymphNodeLevelI, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIa, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIb, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelII, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIIa, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIIb, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIII, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelIV, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLevelV, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeRight, Kind: String, Options: lymphCountOptions},
		{Name: LymphNodeLeft, Kind: String, Options: lymphCountOptions},
		{Name: TotalLymphNode, Kind: String, Options: lymphCountOptions},
		{Name: "Lymphovascular Invasion (LVI)", Kind: String, Options: []string{"Negative", "Positive", "Suspicious"}},
		{Name: "Perineural Invasion (PNI)", Kind: String, Options: []string{"Negative", "Positive", "Extensive"}},
		{Name: "Clinical Overt Extranodal Extension", Kind: String, Options: []string{"Negative", "Positive"}},
		{Name: "Pathological Extranodal Extension (ENE)", Kind: String, Options: []string{"Negative", "Micro", "Macro"}},
		{Name: "Depth of Invasion (mm)", Kind: Float},
		{Name: "Tumor Margin", Kind: String, Options: []string{"Negative", "Close", "Positive", "1 mm", "2 mm", "3 mm", "4 mm"}},
		{Name: ClinicalTNM, Kind: String, Options: tnmOptions},
		{Name: PathologicalTNM, Kind: String, Options: tnmOptions},
		{Name: "Postneoadjuvant Clinical TNM (ycTNM)", Kind: String, Options: append([]string{""}, tnmOptions...)},
		{Name: "Postneoadjuvant Pathological TNM (ypTNM)", Kind: String, Options: append([]string{""}, tnmOptions...)},
		{Name: AJCCStage, Kind: String, Derived: true, Options: []string{
			"Stage I", "Stage II", "Stage III", "Stage IVA", "Stage IVB", "Stage IVC",
		}},
		{Name: ICD10Classification, Kind: String, Derived: true},
		{Name: "Subtype", Kind: String, Options: []string{"HNSC HPV-", "HNSC HPV+", ""}},
		{Name: InitialTreatmentCompletionDate, Kind: Date, Options: []string{"2020-01-01"}, Drop: true},
		{Name: LastFollowUpDate, Kind: Date, Options: []string{"2020-01-01"}, Drop: true},
		{Name: RecurDateAfterInitialTreatment, Kind: Date, Options: []string{"", "2020-01-01"}, Drop: true},
		{Name: ExpireDate, Kind: Date, Options: []string{"", "2020-01-01"}, Drop: true},
		{Name: CauseOfDeath, Kind: String, Options: []string{"", "Cancer", "Other Disease", "Other Cancer", "Uncertain"}, PatientLevel: true},
		{Name: DiseaseFreeMonths, Kind: Float, Derived: true, PatientLevel: true},
		{Name: DiseaseFreeStatus, Kind: String, Derived: true, PatientLevel: true, Options: []string{StatusDiseaseFree, StatusRecurredProgressed}},
		{Name: DiseaseSpecificSurvivalMonths, Kind: Float, Derived: true, PatientLevel: true},
		{Name: DiseaseSpecificSurvivalStatus, Kind: String, Derived: true, PatientLevel: true, Options: []string{StatusTumorFree, StatusDeadWithTumor}},
		{Name: OverallSurvivalMonths, Kind: Float, Derived: true, PatientLevel: true},
		{Name: OverallSurvivalStatus, Kind: String, Derived: true, PatientLevel: true, Options: []string{StatusLiving, StatusDeceased}},
	},
	[]StudyInfoField{
		{Key: "type_of_cancer", Options: []string{"hnsc"}},
		{Key: "cancer_study_identifier", Options: []string{"hnsc_nycu_2024"}},
		{Key: "name", Options: []string{"Head and Neck Squamous Cell Carcinomas (NYCU, 2024)"}},
		{Key: "description", Options: []string{"Whole exome sequencing of oral squamous cell carcinoma (OSCC) tumor/normal pairs"}},
		{Key: "groups", Options: []string{"PUBLIC"}},
		{Key: "reference_genome", Options: []string{"hg38"}},
		{Key: "source_data", Options: []string{"yy_mmdd_dataset"}},
	},
))

var chemoDrugOptions = []string{
	"",
	"None",
	"Cisplatin",
	"5-FU",
	"Docetaxel",
	"Cisplatin, 5-FU",
	"Docetaxel, Cisplatin",
	"Docetaxel, Cisplatin, 5-FU (TPF)",
	"Cisplatin, Mitomycin, 5-FU (PMU)",
}

var targetedDrugOptions = []string{
	"",
	"None",
	"Cetuximab",
	"Cetuximab and Docetaxel",
}
