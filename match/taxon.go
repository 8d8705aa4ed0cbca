package match

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/idkey/codec"
	"github.com/hupe1980/idkey/model"
)

// ErrEmptyTaxonSelection is returned when a taxon selection carries no taxa.
var ErrEmptyTaxonSelection = errors.New("taxon selection has no taxa")

// DecodeError indicates a taxon selection value that could not be decoded.
//
// The original underlying error can be accessed via errors.Unwrap.
type DecodeError struct {
	FilterID string
	Value    string
	cause    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode taxon selection for filter %s: %v", e.FilterID, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// TaxonSelection is the decoded value of a taxon filter control.
type TaxonSelection struct {
	Taxa     []model.Taxon `json:"taxa"`
	Latname  string        `json:"latname,omitempty"`
	IsCustom bool          `json:"is_custom"`
}

// IsDescendant reports whether child lies below (or is) ancestor.
// Ancestry is encoded as a string prefix of the nuid.
func IsDescendant(childNUID, ancestorNUID string) bool {
	return strings.HasPrefix(childNUID, ancestorNUID)
}

// Contains reports whether taxon descends from any reference taxon of the same source.
func (s TaxonSelection) Contains(taxon *model.Taxon) bool {
	if taxon == nil {
		return false
	}
	for _, ref := range s.Taxa {
		if ref.Source == taxon.Source && IsDescendant(taxon.NUID, ref.NUID) {
			return true
		}
	}
	return false
}

// DecodeTaxonSelection decodes base64 encoded UTF-8 JSON into a TaxonSelection.
func DecodeTaxonSelection(raw string) (TaxonSelection, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		var rawErr error
		if data, rawErr = base64.RawStdEncoding.DecodeString(raw); rawErr != nil {
			return TaxonSelection{}, fmt.Errorf("base64: %w", err)
		}
	}

	var sel TaxonSelection
	if err := codec.Default.Unmarshal(data, &sel); err != nil {
		return TaxonSelection{}, fmt.Errorf("json: %w", err)
	}
	if len(sel.Taxa) == 0 {
		return TaxonSelection{}, ErrEmptyTaxonSelection
	}
	return sel, nil
}

// EncodeTaxonSelection produces the control value of a taxon selection.
func EncodeTaxonSelection(sel TaxonSelection) (string, error) {
	data, err := codec.Default.Marshal(sel)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// MatchTaxon decodes the selected values and matches the item's taxon.
//
// Multiple selected values are ORed. Decode failures are fail-closed: no
// item matches and the error is returned.
func MatchTaxon(selected []string, taxon *model.Taxon) (bool, error) {
	refs, err := decodeTaxonSelections("", selected)
	if err != nil {
		return false, err
	}
	return refs.Contains(taxon), nil
}

func decodeTaxonSelections(filterID string, selected []string) (TaxonSelection, error) {
	var (
		merged TaxonSelection
		errs   []error
	)
	for _, raw := range selected {
		sel, err := DecodeTaxonSelection(raw)
		if err != nil {
			errs = append(errs, &DecodeError{FilterID: filterID, Value: raw, cause: err})
			continue
		}
		merged.Taxa = append(merged.Taxa, sel.Taxa...)
	}
	return merged, errors.Join(errs...)
}
