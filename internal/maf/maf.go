// Package maf reads Mutation Annotation Format files. Only the fixed set
// of columns the portal understands is kept; anything else an annotator
// added is dropped on read.
package maf

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// Record is one variant call, restricted to the portal's MAF columns.
// Values stay as text; nothing downstream computes on them.
type Record struct {
	HugoSymbol                 string `csv:"Hugo_Symbol"`
	EntrezGeneID               string `csv:"Entrez_Gene_Id"`
	Center                     string `csv:"Center"`
	NCBIBuild                  string `csv:"NCBI_Build"`
	Chromosome                 string `csv:"Chromosome"`
	StartPosition              string `csv:"Start_Position"`
	EndPosition                string `csv:"End_Position"`
	Strand                     string `csv:"Strand"`
	VariantClassification      string `csv:"Variant_Classification"`
	VariantType                string `csv:"Variant_Type"`
	ReferenceAllele            string `csv:"Reference_Allele"`
	TumorSeqAllele1            string `csv:"Tumor_Seq_Allele1"`
	TumorSeqAllele2            string `csv:"Tumor_Seq_Allele2"`
	DbSNPRS                    string `csv:"dbSNP_RS"`
	DbSNPValStatus             string `csv:"dbSNP_Val_Status"`
	TumorSampleBarcode         string `csv:"Tumor_Sample_Barcode"`
	MatchedNormSampleBarcode   string `csv:"Matched_Norm_Sample_Barcode"`
	MatchNormSeqAllele1        string `csv:"Match_Norm_Seq_Allele1"`
	MatchNormSeqAllele2        string `csv:"Match_Norm_Seq_Allele2"`
	TumorValidationAllele1     string `csv:"Tumor_Validation_Allele1"`
	TumorValidationAllele2     string `csv:"Tumor_Validation_Allele2"`
	MatchNormValidationAllele1 string `csv:"Match_Norm_Validation_Allele1"`
	MatchNormValidationAllele2 string `csv:"Match_Norm_Validation_Allele2"`
	VerificationStatus         string `csv:"Verification_Status"`
	ValidationStatus           string `csv:"Validation_Status"`
	MutationStatus             string `csv:"Mutation_Status"`
	SequencingPhase            string `csv:"Sequencing_Phase"`
	SequenceSource             string `csv:"Sequence_Source"`
	ValidationMethod           string `csv:"Validation_Method"`
	Score                      string `csv:"Score"`
	BAMFile                    string `csv:"BAM_File"`
	Sequencer                  string `csv:"Sequencer"`
	HGVSpShort                 string `csv:"HGVSp_Short"`
	TAltCount                  string `csv:"t_alt_count"`
	TRefCount                  string `csv:"t_ref_count"`
	NAltCount                  string `csv:"n_alt_count"`
	NRefCount                  string `csv:"n_ref_count"`
}

// requiredColumns must be present in every input MAF.
var requiredColumns = []string{
	"Hugo_Symbol",
	"NCBI_Build",
	"Chromosome",
	"Variant_Classification",
	"Reference_Allele",
	"Tumor_Seq_Allele2",
	"Tumor_Sample_Barcode",
	"HGVSp_Short",
}

// Columns returns the output column order.
func Columns() []string {
	return []string{
		"Hugo_Symbol", "Entrez_Gene_Id", "Center", "NCBI_Build", "Chromosome",
		"Start_Position", "End_Position", "Strand", "Variant_Classification",
		"Variant_Type", "Reference_Allele", "Tumor_Seq_Allele1",
		"Tumor_Seq_Allele2", "dbSNP_RS", "dbSNP_Val_Status",
		"Tumor_Sample_Barcode", "Matched_Norm_Sample_Barcode",
		"Match_Norm_Seq_Allele1", "Match_Norm_Seq_Allele2",
		"Tumor_Validation_Allele1", "Tumor_Validation_Allele2",
		"Match_Norm_Validation_Allele1", "Match_Norm_Validation_Allele2",
		"Verification_Status", "Validation_Status", "Mutation_Status",
		"Sequencing_Phase", "Sequence_Source", "Validation_Method", "Score",
		"BAM_File", "Sequencer", "HGVSp_Short", "t_alt_count", "t_ref_count",
		"n_alt_count", "n_ref_count",
	}
}

// SampleID derives the sample id from a MAF file path.
func SampleID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".maf")
}

// ReadFile parses a tab-separated MAF. A leading "#version" comment line
// is skipped. The Tumor_Sample_Barcode of every record is overridden
// with the filename-derived sample id, which is the authoritative one.
func ReadFile(path string) ([]*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read MAF: %w", err)
	}

	content := string(data)
	if strings.HasPrefix(content, "#") {
		if _, rest, ok := strings.Cut(content, "\n"); ok {
			content = rest
		} else {
			content = ""
		}
	}

	header, err := readHeader(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range requiredColumns {
		if !present[name] {
			return nil, fmt.Errorf("column %q not found in %q", name, path)
		}
	}

	var records []*Record
	r := newTSVReader(content)
	if err := gocsv.UnmarshalCSV(r, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	id := SampleID(path)
	for _, rec := range records {
		rec.TumorSampleBarcode = id
	}
	return records, nil
}

func readHeader(content string) ([]string, error) {
	r := newTSVReader(content)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	return header, nil
}

func newTSVReader(content string) *csv.Reader {
	r := csv.NewReader(strings.NewReader(content))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}
