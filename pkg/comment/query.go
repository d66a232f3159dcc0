package comment

import (
	"strconv"
	"strings"
	"time"

	"github.com/forumkit/forumkit/pkg/validator"
)

// Listing defaults shared by the comment endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	DefaultSortField = "createdAt"
	DefaultSortOrder = "desc"
)

// DefaultSortFields is the allow-list of sortable comment fields.
var DefaultSortFields = []string{"createdAt", "likes", "reports"}

var sortOrders = []string{"asc", "desc"}

// Pagination holds normalized paging values.
type Pagination struct {
	Page  int
	Limit int
}

// PaginationResult reports the outcome of ValidatePagination. Values always
// holds usable paging parameters; invalid input is replaced by the default.
type PaginationResult struct {
	Valid  bool
	Errors []string
	Values Pagination
}

// ValidatePagination checks raw page and limit query parameters. An empty
// string means the parameter was absent and silently takes its default; a
// present but invalid value records an error and still falls back to the
// default so callers can serve a best-effort page.
func ValidatePagination(page, limit string) PaginationResult {
	result := PaginationResult{
		Values: Pagination{Page: DefaultPage, Limit: DefaultLimit},
	}

	if page != "" {
		const pageMsg = "Page must be a positive integer"
		n, err := strconv.Atoi(strings.TrimSpace(page))
		if err != nil {
			result.Errors = append(result.Errors, pageMsg)
		} else if verr := validator.Apply(validator.MinNumMsg("page", n, 1, pageMsg)); verr != nil {
			result.Errors = append(result.Errors, validator.ExtractValidationErrors(verr).Messages()...)
		} else {
			result.Values.Page = n
		}
	}

	if limit != "" {
		limitMsg := "Limit must be an integer between 1 and " + strconv.Itoa(MaxLimit)
		n, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil {
			result.Errors = append(result.Errors, limitMsg)
		} else if verr := validator.Apply(validator.BetweenNumMsg("limit", n, 1, MaxLimit, limitMsg)); verr != nil {
			result.Errors = append(result.Errors, validator.ExtractValidationErrors(verr).Messages()...)
		} else {
			result.Values.Limit = n
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// Sort holds normalized sorting values.
type Sort struct {
	Field string
	Order string
}

// SortResult reports the outcome of ValidateSort. Values always holds a
// usable field/order pair, falling back to defaults when input is rejected.
type SortResult struct {
	Valid  bool
	Errors []string
	Values Sort
}

// SortOption overrides a sort validation default.
type SortOption func(*sortConfig)

type sortConfig struct {
	allowedFields []string
}

// SortFields replaces the allow-list of sortable fields.
func SortFields(fields ...string) SortOption {
	return func(c *sortConfig) {
		c.allowedFields = fields
	}
}

// ValidateSort checks raw sort and order query parameters against the
// allow-list. Absent parameters take the defaults (createdAt, desc); values
// outside the allow-list record an error and fall back to the default.
func ValidateSort(sortBy, order string, opts ...SortOption) SortResult {
	cfg := &sortConfig{allowedFields: DefaultSortFields}
	for _, opt := range opts {
		opt(cfg)
	}

	result := SortResult{
		Values: Sort{Field: DefaultSortField, Order: DefaultSortOrder},
	}

	if sortBy != "" {
		if err := validator.Apply(validator.InListString("Sort field", sortBy, cfg.allowedFields)); err != nil {
			result.Errors = append(result.Errors, validator.ExtractValidationErrors(err).Messages()...)
		} else {
			result.Values.Field = sortBy
		}
	}

	if order != "" {
		if err := validator.Apply(validator.ValidEnum("Sort order", order, sortOrders)); err != nil {
			result.Errors = append(result.Errors, validator.ExtractValidationErrors(err).Messages()...)
		} else {
			result.Values.Order = order
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// DateRange holds parsed range bounds. A zero time means the bound was absent.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateRangeResult reports the outcome of ValidateDateRange.
type DateRangeResult struct {
	Valid  bool
	Errors []string
	Values DateRange
}

// dateFormats are tried in order when parsing range bounds.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateDateRange checks optional dateFrom/dateTo filter parameters. Each
// present bound must parse as a date; when both parse, dateFrom must fall
// strictly before dateTo.
func ValidateDateRange(dateFrom, dateTo string) DateRangeResult {
	result := DateRangeResult{}

	var fromOK, toOK bool
	if dateFrom != "" {
		result.Values.From, fromOK = parseDate(dateFrom)
		if !fromOK {
			result.Errors = append(result.Errors, "dateFrom must be a valid date")
		}
	}
	if dateTo != "" {
		result.Values.To, toOK = parseDate(dateTo)
		if !toOK {
			result.Errors = append(result.Errors, "dateTo must be a valid date")
		}
	}

	if fromOK && toOK {
		if err := validator.Apply(
			validator.DateOrder("dateFrom", "dateTo", result.Values.From, result.Values.To),
		); err != nil {
			result.Errors = append(result.Errors, validator.ExtractValidationErrors(err).Messages()...)
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
