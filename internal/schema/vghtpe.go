package schema

var yesNoOptions = []string{"0", "1", "NA"}

// VghtpeLuad is the VGHTPE lung adenocarcinoma registry. Survival numbers
// arrive pre-computed, so nothing is derived.
var VghtpeLuad = register(New("VGHTPE LUAD",
	[]Field{
		{Name: "Serial No", Kind: String, Options: []string{"C0000"}},
		{Name: "Gender", Kind: String, Options: []string{"F", "M"}, PatientLevel: true},
		{Name: "AGE", Kind: Int, PatientLevel: true},
		{Name: "Smoking_YN", Kind: String, Options: yesNoOptions, PatientLevel: true},
		{Name: "Family_History_YN", Kind: String, Options: yesNoOptions, PatientLevel: true},
		{Name: "Neodjuvant_therapy_YN", Kind: String, Options: yesNoOptions, PatientLevel: true},
		{Name: "Adjuvant_therapy_YN", Kind: String, Options: yesNoOptions, PatientLevel: true},
		{Name: "Last f/u date", Kind: Date, Options: []string{"", "2020-01-01"}, Drop: true},
		{Name: "DFS", Kind: Float, PatientLevel: true},
		{Name: "Death Y1N0", Kind: String, Options: yesNoOptions, PatientLevel: true},
		{Name: "Death date", Kind: Date, Options: []string{"", "2020-01-01"}, Drop: true},
		{Name: "OS", Kind: Float, PatientLevel: true},
		{Name: "Histologic type", Kind: String, Options: []string{
			"Minimally invasive adenocarcinoma, nonmucinous",
			"Invasive adenocarcinoma, nonmucinous",
			"Invasive squamous cell carcinoma, non-keratinizing",
			"Invasive squamous cell carcinoma, keratinizing",
			"Adenosquamous carcinoma",
		}},
		{Name: "Subtype for invasive nonmucinous adenocarcinoma", Kind: String, Options: []string{
			"NA", "Acinar", "Micropapillary", "Lepidic", "Solid", "Papillary",
		}},
		{Name: "Histologic Grade", Kind: String, Options: []string{
			"G1: Well differentiated",
			"G2: Moderately differentiated",
			"G3: Poorly differentiated",
			"Not applicable",
		}},
		{Name: "Spread Through Air Spaces (STAS)", Kind: String, Options: []string{"Not identified", "Present"}},
		{Name: "Visceral Pleura Invasion", Kind: String, Options: []string{"Not identified", "Present (PL1)", "Present (PL2)"}},
		{Name: "Lymphovascular Invasion", Kind: String, Options: []string{"Not identified", "Present"}},
		{Name: "Primary Tumor (pT)", Kind: String, Options: []string{"pT1mi", "pT1a", "pT1b", "pT2a", "pT2b", "pT3"}},
		{Name: "Regional Lymph Nodes (pN)", Kind: String, Options: []string{"pN0", "pN1", "pN2", "pNX"}},
		{Name: "Distant Metastasis (pM)", Kind: String, Options: []string{"No distant metastasis in specimen examined"}},
	},
	[]StudyInfoField{
		{Key: "type_of_cancer", Options: []string{"luad"}},
		{Key: "cancer_study_identifier", Options: []string{"luad_vghtpe_2024"}},
		{Key: "name", Options: []string{"Lung Adenocarcinoma (VGHTPE, 2024)"}},
		{Key: "description", Options: []string{"Whole exome sequencing of LUAD tumor/normal pairs"}},
		{Key: "groups", Options: []string{"PUBLIC"}},
		{Key: "reference_genome", Options: []string{"hg38"}},
		{Key: "source_data", Options: []string{"dataset"}},
	},
))

// VghtpeHnscc is the VGHTPE head and neck squamous cell carcinoma registry.
var VghtpeHnscc = register(New("VGHTPE HNSCC",
	[]Field{
		{Name: "Study_num", Kind: String, Options: []string{"H0000"}},
		{Name: "T", Kind: String, Options: []string{"1", "1a", "1b", "2", "3", "3a", "4", "4a", "4b", "is", "NA"}},
		{Name: "N", Kind: String, Options: []string{"0", "1", "2", "2a", "2b", "2c", "3", "3a", "3b", "NA"}},
		{Name: "M", Kind: String, Options: []string{"0", "1", "NA"}},
		{Name: "stage", Kind: String, Options: []string{"0", "I", "IA", "IB", "II", "IIB", "III", "IIIB", "IVA", "IVB", "IVC", "NA"}},
		{Name: "recurrence", Kind: String, Options: yesNoOptions},
		{Name: "pathological_diagnosis_date", Kind: String, Options: []string{"2020-01-01"}, Drop: true},
		{Name: "ENE", Kind: String, Options: []string{"0", "1", "NA", "PNOS"}},
		{Name: "PNI", Kind: String, Options: yesNoOptions},
		{Name: "LVI", Kind: String, Options: yesNoOptions},
		{Name: "T Emboli", Kind: String, Options: yesNoOptions},
		{Name: "WPOI", Kind: String, Options: yesNoOptions},
	},
	[]StudyInfoField{
		{Key: "type_of_cancer", Options: []string{"hnsc"}},
		{Key: "cancer_study_identifier", Options: []string{"hnsc_vghtpe_2024"}},
		{Key: "name", Options: []string{"Head and Neck Squamous Cell Carcinoma (VGHTPE, 2024)"}},
		{Key: "description", Options: []string{"Whole exome sequencing of HNSCC tumor/normal pairs"}},
		{Key: "groups", Options: []string{"PUBLIC"}},
		{Key: "reference_genome", Options: []string{"hg38"}},
		{Key: "source_data", Options: []string{"dataset"}},
	},
))
