package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ErrFormsUnavailable is returned when the forms backend cannot be queried.
var ErrFormsUnavailable = model.ErrFormsUnavailable

type FormSource interface {
	Forms(ctx context.Context) ([]model.Form, error)
	Form(ctx context.Context, id int64) (model.Form, error)
}

type EntrySource interface {
	Entry(ctx context.Context, id int64) (model.Entry, error)
	SearchEntries(ctx context.Context, formID int64, c model.EntryCriteria) ([]model.Entry, error)
}

type Options struct {
	AdminURL        string
	FormConcurrency int
	FormPageSize    int
}

type Searcher struct {
	forms   FormSource
	entries EntrySource
	opts    Options
}

func NewSearcher(forms FormSource, entries EntrySource, opts Options) *Searcher {
	if opts.FormConcurrency < 1 {
		opts.FormConcurrency = 1
	}
	if opts.FormPageSize < 1 {
		opts.FormPageSize = 200
	}
	if opts.AdminURL != "" && !strings.HasSuffix(opts.AdminURL, "/") {
		opts.AdminURL += "/"
	}
	return &Searcher{forms: forms, entries: entries, opts: opts}
}

// NormalizePaging applies the defaults and the per_page cap to raw request
// values. Negative values are taken by magnitude first.
func NormalizePaging(page, perPage int) (int, int) {
	page, perPage = abs(page), abs(perPage)
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if page == 0 {
		page = 1
	}
	return page, perPage
}

// Search runs q against every form, or only formID when it is positive, and
// returns one page of results ordered newest first.
func (s *Searcher) Search(ctx context.Context, q string, formID int64, page, perPage int) (model.SearchPage, error) {
	page, perPage = NormalizePaging(page, perPage)
	out := model.SearchPage{Results: []model.SearchResult{}, Page: page, PerPage: perPage}

	forms, err := s.candidateForms(ctx, formID)
	if err != nil {
		return out, err
	}
	if len(forms) == 0 {
		return out, nil
	}

	perForm := make([][]model.SearchResult, len(forms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.FormConcurrency)
	for i, form := range forms {
		g.Go(func() error {
			res, err := s.searchForm(gctx, form, q)
			if err != nil {
				return fmt.Errorf("search form %d: %w", form.ID, err)
			}
			perForm[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	var all []model.SearchResult
	seen := make(map[int64]bool)
	for _, res := range perForm {
		for _, r := range res {
			if seen[r.EntryID] {
				continue
			}
			seen[r.EntryID] = true
			all = append(all, r)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Created.After(all[j].Created)
	})

	out.Total = len(all)
	out.TotalPages = int(math.Ceil(float64(out.Total) / float64(perPage)))
	if page-1 < len(all)/perPage+1 {
		offset := (page - 1) * perPage
		if offset < len(all) {
			out.Results = all[offset:min(offset+perPage, len(all))]
		}
	}
	return out, nil
}

func (s *Searcher) candidateForms(ctx context.Context, formID int64) ([]model.Form, error) {
	if formID > 0 {
		form, err := s.forms.Form(ctx, formID)
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("load form %d: %w", formID, err)
		}
		return []model.Form{form}, nil
	}

	forms, err := s.forms.Forms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load forms: %w", err)
	}
	return forms, nil
}

func (s *Searcher) searchForm(ctx context.Context, form model.Form, q string) ([]model.SearchResult, error) {
	keys := SearchableFields(form)
	if len(keys) == 0 {
		return nil, nil
	}

	var results []model.SearchResult
	if id, ok := numericQuery(q); ok {
		e, err := s.entries.Entry(ctx, id)
		switch {
		case err == nil:
			if e.FormID == form.ID && e.Status != model.EntryStatusTrash {
				results = append(results, s.format(e, form))
			}
		case !errors.Is(err, model.ErrNotFound):
			return nil, err
		}
	}

	entries, err := s.entries.SearchEntries(ctx, form.ID, model.EntryCriteria{
		Status: model.EntryStatusActive,
		Keys:   keys,
		Value:  q,
		Limit:  s.opts.FormPageSize,
	})
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		results = append(results, s.format(e, form))
	}
	return results, nil
}

func (s *Searcher) format(e model.Entry, form model.Form) model.SearchResult {
	return model.SearchResult{
		EntryID:      e.ID,
		FormID:       e.FormID,
		FormTitle:    form.Title,
		PrimaryValue: PrimaryValue(e, form),
		DateCreated:  e.DateCreated.UTC().Format(model.DateLayout),
		CreatedBy:    e.CreatedBy,
		Status:       e.Status,
		EditURL:      fmt.Sprintf("%sadmin.php?page=gf_entries&view=entry&id=%d&lid=%d", s.opts.AdminURL, e.FormID, e.ID),
		Created:      e.DateCreated,
	}
}

func numericQuery(q string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(q), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func abs(n int) int {
	if n == math.MinInt {
		return math.MaxInt
	}
	if n < 0 {
		return -n
	}
	return n
}
