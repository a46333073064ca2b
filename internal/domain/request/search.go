package request

import "strings"

// Criteria is a sparse set of search filters. Zero-valued fields are not
// filtered on; an entirely empty Criteria matches every record. All supplied
// filters are ANDed.
type Criteria struct {
	ID       string
	Title    string
	Category string
	Date     string
	Status   string
	Keyword  string
}

// IsEmpty reports whether no filter was supplied.
func (c Criteria) IsEmpty() bool {
	return c.ID == "" && c.Title == "" && c.Category == "" &&
		c.Date == "" && c.Status == "" && c.Keyword == ""
}

// Filter returns the records matching every supplied criterion, preserving
// input order. Matching rules: id is prefix-normalized equality; title,
// category, date and status are case-insensitive substring containment;
// keyword matches if it is contained in title, description or category.
func Filter(records []Request, c Criteria) []Request {
	if c.IsEmpty() {
		return records
	}

	var matched []Request
	for _, rec := range records {
		if matches(rec, c) {
			matched = append(matched, rec)
		}
	}
	return matched
}

func matches(rec Request, c Criteria) bool {
	if c.ID != "" && !SameID(rec.ID, c.ID) {
		return false
	}
	if c.Title != "" && !containsFold(rec.Title, c.Title) {
		return false
	}
	if c.Category != "" && !containsFold(rec.Category, c.Category) {
		return false
	}
	if c.Date != "" && !containsFold(rec.Date, c.Date) {
		return false
	}
	if c.Status != "" && !containsFold(string(rec.Status), c.Status) {
		return false
	}
	if c.Keyword != "" {
		if !containsFold(rec.Title, c.Keyword) &&
			!containsFold(rec.Description, c.Keyword) &&
			!containsFold(rec.Category, c.Keyword) {
			return false
		}
	}
	return true
}

// FilterShortlisted restricts the candidate set to records satisfying the
// shortlist predicate before applying the standard criteria.
func FilterShortlisted(records []Request, c Criteria, isShortlisted func(Request) bool) []Request {
	var matched []Request
	for _, rec := range records {
		if !isShortlisted(rec) {
			continue
		}
		if c.IsEmpty() || matches(rec, c) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// PreviousCriteria filters completed (or otherwise terminal) requests.
// Status is an exact case-insensitive match precondition; Fields is a
// generic key/value map where string values match by substring and
// everything else by equality; Keyword searches title, description and
// location.
type PreviousCriteria struct {
	Status   string
	Fields   map[string]any
	Keyword  string
	Category string
	Date     string
}

// FilterPrevious returns records whose status exactly equals the target
// status and that pass the generic field filters plus the keyword,
// category and date refinements.
func FilterPrevious(records []Request, pc PreviousCriteria) []Request {
	target := pc.Status
	if target == "" {
		target = string(StatusCompleted)
	}

	var matched []Request
	for _, rec := range records {
		if !strings.EqualFold(strings.TrimSpace(string(rec.Status)), strings.TrimSpace(target)) {
			continue
		}
		if !matchesFields(rec, pc.Fields) {
			continue
		}
		if pc.Keyword != "" {
			if !containsFold(rec.Title, pc.Keyword) &&
				!containsFold(rec.Description, pc.Keyword) &&
				!containsFold(rec.Location, pc.Keyword) {
				continue
			}
		}
		if pc.Category != "" && !containsFold(rec.Category, pc.Category) {
			continue
		}
		if pc.Date != "" && !containsFold(rec.Date, pc.Date) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

func matchesFields(rec Request, fields map[string]any) bool {
	for key, expected := range fields {
		switch want := expected.(type) {
		case string:
			value, _ := fieldValue(rec, key)
			if !containsFold(value, want) {
				return false
			}
		case int:
			if strings.EqualFold(key, "viewcount") {
				if rec.ViewCount != want {
					return false
				}
				continue
			}
			return false
		case bool:
			if strings.EqualFold(key, "shortlisted") {
				if rec.Shortlisted != want {
					return false
				}
				continue
			}
			return false
		default:
			return false
		}
	}
	return true
}

// fieldValue resolves a filter key to the record field it names.
func fieldValue(rec Request, key string) (string, bool) {
	switch strings.ToLower(key) {
	case "id":
		return rec.ID, true
	case "title":
		return rec.Title, true
	case "category":
		return rec.Category, true
	case "description":
		return rec.Description, true
	case "location":
		return rec.Location, true
	case "date":
		return rec.Date, true
	case "time":
		return rec.Time, true
	case "status":
		return string(rec.Status), true
	case "owner":
		return rec.Owner, true
	case "assignedto":
		if rec.AssignedTo != nil {
			return *rec.AssignedTo, true
		}
		return "", true
	default:
		return "", false
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
