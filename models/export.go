package models

import "encoding/json"

// ExportSettings holds the scalar settings included in an export bundle.
type ExportSettings struct {
	CompanyName string `json:"companyName"`
}

// ExportBundle is the single-document interchange format for backups.
// Every collection must be present (possibly empty) for the bundle to be
// importable.
type ExportBundle struct {
	Products     []Product      `json:"products"`
	Categories   []Category     `json:"categories"`
	Suppliers    []Supplier     `json:"suppliers"`
	Transactions []Transaction  `json:"transactions"`
	Users        []User         `json:"users"`
	Settings     ExportSettings `json:"settings"`
}

// requiredBundleKeys lists the collections an import may not omit.
var requiredBundleKeys = []string{"products", "categories", "suppliers", "transactions", "users"}

// ParseExportBundle decodes raw JSON into a bundle, rejecting payloads that
// omit any of the five collections. An explicit empty array is accepted; a
// missing key is not.
func ParseExportBundle(data []byte) (ExportBundle, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return ExportBundle{}, err
	}
	for _, key := range requiredBundleKeys {
		if _, ok := keys[key]; !ok {
			return ExportBundle{}, &MissingCollectionError{Collection: key}
		}
	}

	var bundle ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return ExportBundle{}, err
	}
	return bundle, nil
}

// MissingCollectionError reports an import payload without a required collection.
type MissingCollectionError struct {
	Collection string
}

func (e *MissingCollectionError) Error() string {
	return "export bundle is missing the " + e.Collection + " collection"
}
