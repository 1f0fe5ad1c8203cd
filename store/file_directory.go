package store

import (
	"strings"
	"time"

	"github.com/naborly/naborly/models"
)

// CreateComplaint prepends an intake entry to the complaints dataset.
func (f *FileStore) CreateComplaint(in ComplaintInput) (*ComplaintView, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Field: "description", Reason: "must not be empty"}
	}

	mu := f.lock(DatasetComplaints)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadComplaints()
	if err != nil {
		return nil, err
	}

	doc := ComplaintDocument{
		Category:    orDefault(strings.TrimSpace(in.Category), "Other"),
		Description: in.Description,
		Contact:     in.Contact,
		Location:    in.Location,
		Status:      "submitted",
		CreatedAt:   time.Now().Format(complaintTimeLayout),
	}
	docs = append([]ComplaintDocument{doc}, docs...)

	if err := f.saveDocument(DatasetComplaints, docs); err != nil {
		return nil, err
	}
	view := doc.view()
	return &view, nil
}

// GetComplaints pages the complaints dataset, newest first.
func (f *FileStore) GetComplaints(limit, offset int) ([]ComplaintView, error) {
	mu := f.lock(DatasetComplaints)
	mu.Lock()
	defer mu.Unlock()

	docs, err := f.loadComplaints()
	if err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if offset >= len(docs) {
		return []ComplaintView{}, nil
	}
	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	views := make([]ComplaintView, 0, end-offset)
	for _, doc := range docs[offset:end] {
		views = append(views, doc.view())
	}
	return views, nil
}

// CreateServiceProvider appends a provider to the listings dataset.
func (f *FileStore) CreateServiceProvider(p ProviderDocument) error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	p.Category = orDefault(strings.TrimSpace(p.Category), "General")

	mu := f.lock(DatasetListings)
	mu.Lock()
	defer mu.Unlock()

	doc, err := f.loadListings()
	if err != nil {
		return err
	}
	doc.Providers = append([]ProviderDocument{p}, doc.Providers...)
	return f.saveDocument(DatasetListings, doc)
}

// GetServiceProviders filters the listings dataset's providers in memory
// with the same semantics as the relational read.
func (f *FileStore) GetServiceProviders(d DirectoryQuery) ([]ProviderDocument, error) {
	mu := f.lock(DatasetListings)
	mu.Lock()
	defer mu.Unlock()

	doc, err := f.loadListings()
	if err != nil {
		return nil, err
	}

	out := make([]ProviderDocument, 0, len(doc.Providers))
	needle := strings.ToLower(d.Query)
	for _, p := range doc.Providers {
		if d.Field != "" && p.Category != d.Field {
			continue
		}
		if needle != "" && !containsFold(needle, p.Name, p.Area, p.Description) {
			continue
		}
		out = append(out, p)
		if len(out) == directoryLimit(d.Limit) {
			break
		}
	}
	return out, nil
}

// CreateVendor appends a vendor to the listings dataset.
func (f *FileStore) CreateVendor(v VendorDocument) error {
	if strings.TrimSpace(v.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	v.Type = orDefault(strings.TrimSpace(v.Type), "General")

	mu := f.lock(DatasetListings)
	mu.Lock()
	defer mu.Unlock()

	doc, err := f.loadListings()
	if err != nil {
		return err
	}
	doc.Vendors = append([]VendorDocument{v}, doc.Vendors...)
	return f.saveDocument(DatasetListings, doc)
}

// GetVendors filters the listings dataset's vendors in memory.
func (f *FileStore) GetVendors(d DirectoryQuery) ([]VendorDocument, error) {
	mu := f.lock(DatasetListings)
	mu.Lock()
	defer mu.Unlock()

	doc, err := f.loadListings()
	if err != nil {
		return nil, err
	}

	out := make([]VendorDocument, 0, len(doc.Vendors))
	needle := strings.ToLower(d.Query)
	for _, v := range doc.Vendors {
		if d.Field != "" && v.Type != d.Field {
			continue
		}
		if needle != "" && !containsFold(needle, v.Name, v.Area, v.Notes) {
			continue
		}
		out = append(out, v)
		if len(out) == directoryLimit(d.Limit) {
			break
		}
	}
	return out, nil
}

// GetGovernmentBodies serves the built-in office entries. The listings file
// carries residents' submissions only; civic offices are curated and live in
// the database, so file mode falls back to the shipped set.
func (f *FileStore) GetGovernmentBodies(d DirectoryQuery) ([]models.GovernmentBody, error) {
	out := make([]models.GovernmentBody, 0)
	needle := strings.ToLower(d.Query)
	for _, b := range defaultBodies() {
		if d.Field != "" && b.Department != d.Field {
			continue
		}
		if needle != "" && !containsFold(needle, b.Name, b.Location) {
			continue
		}
		out = append(out, b)
		if len(out) == directoryLimit(d.Limit) {
			break
		}
	}
	return out, nil
}

// containsFold reports whether any of the haystacks contains the lowercased
// needle, case-insensitively.
func containsFold(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}
