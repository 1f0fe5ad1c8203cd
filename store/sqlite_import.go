package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/naborly/naborly/models"
	"github.com/naborly/naborly/utils"
)

// ImportComplaintsFromJSON replays a complaints dataset file into the
// database. Rows are inserted as they come, with defaults filled in; running
// the import twice inserts the entries twice. A missing file imports nothing.
func (s *SQLStore) ImportComplaintsFromJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var docs []ComplaintDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	imported := 0
	for i, doc := range docs {
		if strings.TrimSpace(doc.Description) == "" {
			utils.Sugar.Warnf("skipping complaint %d in %s: empty description", i, path)
			continue
		}
		complaint := models.Complaint{
			Category:    orDefault(strings.TrimSpace(doc.Category), "Other"),
			Description: doc.Description,
			Contact:     doc.Contact,
			Location:    doc.Location,
			Status:      orDefault(strings.TrimSpace(doc.Status), "submitted"),
			CreatedAt:   parseDocTime(doc.CreatedAt, complaintTimeLayout),
		}
		if err := s.db.Create(&complaint).Error; err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// ImportServicesFromJSON replays a listings dataset file into the provider
// and vendor tables. Same replay semantics as the complaints import.
func (s *SQLStore) ImportServicesFromJSON(path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}

	var doc ListingsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, 0, fmt.Errorf("parse %s: %w", path, err)
	}

	providers := 0
	for i, p := range doc.Providers {
		if strings.TrimSpace(p.Name) == "" {
			utils.Sugar.Warnf("skipping provider %d in %s: empty name", i, path)
			continue
		}
		row := models.ServiceProvider{
			Category:    orDefault(strings.TrimSpace(p.Category), "General"),
			Name:        p.Name,
			Contact:     p.Contact,
			Area:        p.Area,
			Description: p.Description,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return providers, 0, err
		}
		providers++
	}

	vendors := 0
	for i, v := range doc.Vendors {
		if strings.TrimSpace(v.Name) == "" {
			utils.Sugar.Warnf("skipping vendor %d in %s: empty name", i, path)
			continue
		}
		row := models.Vendor{
			Type:    orDefault(strings.TrimSpace(v.Type), "General"),
			Name:    v.Name,
			Contact: v.Contact,
			Area:    v.Area,
			Notes:   v.Notes,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return providers, vendors, err
		}
		vendors++
	}
	return providers, vendors, nil
}
