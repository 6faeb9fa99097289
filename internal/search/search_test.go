package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/onabhani/SimpleDashboard/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeStore struct {
	mu       sync.Mutex
	forms    []model.Form
	entries  []model.Entry
	formsErr error
	calls    []model.EntryCriteria
}

func (f *fakeStore) Forms(ctx context.Context) ([]model.Form, error) {
	return f.forms, f.formsErr
}

func (f *fakeStore) Form(ctx context.Context, id int64) (model.Form, error) {
	if f.formsErr != nil {
		return model.Form{}, f.formsErr
	}
	for _, form := range f.forms {
		if form.ID == id {
			return form, nil
		}
	}
	return model.Form{}, model.ErrNotFound
}

func (f *fakeStore) Entry(ctx context.Context, id int64) (model.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Entry{}, model.ErrNotFound
}

func (f *fakeStore) SearchEntries(ctx context.Context, formID int64, c model.EntryCriteria) ([]model.Entry, error) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	needle := strings.ToLower(c.Value)
	var out []model.Entry
	for _, e := range f.entries {
		if e.FormID != formID || e.Status != c.Status {
			continue
		}
		for _, k := range c.Keys {
			if strings.Contains(strings.ToLower(e.Values[k]), needle) {
				out = append(out, e)
				break
			}
		}
		if c.Limit > 0 && len(out) == c.Limit {
			break
		}
	}
	return out, nil
}

var base = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

func contactForm(id int64) model.Form {
	return model.Form{
		ID:    id,
		Title: "Contact " + strconv.FormatInt(id, 10),
		Fields: []model.Field{
			{ID: 1, Type: "name", Inputs: []model.FieldInput{{ID: "1.3"}, {ID: "1.6"}}},
			{ID: 2, Type: "email"},
			{ID: 3, Type: "fileupload"},
		},
	}
}

func entry(id, formID int64, age time.Duration, values map[string]string) model.Entry {
	return model.Entry{ID: id, FormID: formID, Status: model.EntryStatusActive, DateCreated: base.Add(-age), Values: values}
}

func newSearcher(store *fakeStore) *Searcher {
	return NewSearcher(store, store, Options{AdminURL: "https://ops.example.com/wp-admin", FormConcurrency: 2, FormPageSize: 200})
}

func TestNormalizePaging(t *testing.T) {
	tests := []struct {
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{1, 20, 1, 20},
		{0, 0, 1, 20},
		{3, 500, 3, 100},
		{-2, -30, 2, 30},
		{1, 100, 1, 100},
		{1, 101, 1, 100},
		{math.MinInt, 20, math.MaxInt, 20},
		{math.MaxInt, math.MinInt, math.MaxInt, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.page, tt.perPage), func(t *testing.T) {
			page, perPage := NormalizePaging(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestSearch_SortedNewestFirstAcrossForms(t *testing.T) {
	store := &fakeStore{
		forms: []model.Form{contactForm(1), contactForm(2)},
		entries: []model.Entry{
			entry(10, 1, 5*time.Hour, map[string]string{"1.3": "Sara", "1.6": "Ali"}),
			entry(11, 1, 1*time.Hour, map[string]string{"2": "sara@example.com"}),
			entry(20, 2, 3*time.Hour, map[string]string{"1.3": "Sarah"}),
			entry(21, 2, 0, map[string]string{"1.3": "Omar"}),
		},
	}

	page, err := newSearcher(store).Search(context.Background(), "SAR", 0, 1, 20)
	require.NoError(t, err)

	require.Len(t, page.Results, 3)
	assert.Equal(t, []int64{11, 20, 10}, ids(page.Results))
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	for i := 1; i < len(page.Results); i++ {
		assert.False(t, page.Results[i].Created.After(page.Results[i-1].Created))
	}
}

func TestSearch_NumericQueryFindsEntryByID(t *testing.T) {
	store := &fakeStore{
		forms: []model.Form{contactForm(1), contactForm(2)},
		entries: []model.Entry{
			entry(42, 1, 48*time.Hour, map[string]string{"1.3": "Khalid"}),
			entry(43, 1, time.Hour, map[string]string{"2": "room42@example.com"}),
		},
	}

	page, err := newSearcher(store).Search(context.Background(), "42", 1, 1, 20)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{42, 43}, ids(page.Results))
	assert.Equal(t, 2, page.Total)

	res, err := newSearcher(store).searchForm(context.Background(), contactForm(1), "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res[0].EntryID)
}

func TestSearch_NumericQuerySkipsOtherFormsAndTrash(t *testing.T) {
	trashed := entry(7, 1, 0, nil)
	trashed.Status = model.EntryStatusTrash
	store := &fakeStore{
		forms:   []model.Form{contactForm(1), contactForm(2)},
		entries: []model.Entry{trashed, entry(8, 2, 0, nil)},
	}

	page, err := newSearcher(store).Search(context.Background(), "7", 1, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Results)

	page, err = newSearcher(store).Search(context.Background(), " 8 ", 0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, []int64{8}, ids(page.Results))
}

func TestSearch_IDHitNotDuplicated(t *testing.T) {
	store := &fakeStore{
		forms:   []model.Form{contactForm(1)},
		entries: []model.Entry{entry(5, 1, 0, map[string]string{"2": "unit5@example.com"})},
	}

	page, err := newSearcher(store).Search(context.Background(), "5", 0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestSearch_Pagination(t *testing.T) {
	store := &fakeStore{forms: []model.Form{contactForm(1)}}
	for i := int64(1); i <= 25; i++ {
		store.entries = append(store.entries, entry(i, 1, time.Duration(i)*time.Minute, map[string]string{"1.3": "Layla"}))
	}

	page, err := newSearcher(store).Search(context.Background(), "layla", 0, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, []int64{21, 22, 23, 24, 25}, ids(page.Results))

	page, err = newSearcher(store).Search(context.Background(), "layla", 0, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.NotNil(t, page.Results)
}

func TestSearch_HugePageIsEmpty(t *testing.T) {
	store := &fakeStore{
		forms:   []model.Form{contactForm(1)},
		entries: []model.Entry{entry(1, 1, 0, map[string]string{"1.3": "abc"})},
	}

	for _, p := range []int{92233720368547760, math.MaxInt, math.MinInt} {
		page, err := newSearcher(store).Search(context.Background(), "abc", 0, p, 100)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Total)
		assert.Empty(t, page.Results)
		assert.NotNil(t, page.Results)
	}
}

func TestSearch_PerPageCapped(t *testing.T) {
	store := &fakeStore{forms: []model.Form{contactForm(1)}}

	page, err := newSearcher(store).Search(context.Background(), "x", 0, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, page.PerPage)
}

func TestSearch_NoForms(t *testing.T) {
	page, err := newSearcher(&fakeStore{}).Search(context.Background(), "anything", 0, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Results)

	page, err = newSearcher(&fakeStore{forms: []model.Form{contactForm(1)}}).Search(context.Background(), "x", 99, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}

func TestSearch_FormsUnavailable(t *testing.T) {
	store := &fakeStore{formsErr: fmt.Errorf("query forms: %w", model.ErrFormsUnavailable)}

	_, err := newSearcher(store).Search(context.Background(), "x", 0, 1, 20)
	assert.ErrorIs(t, err, ErrFormsUnavailable)
}

func TestSearch_CriteriaPassedToStore(t *testing.T) {
	store := &fakeStore{forms: []model.Form{contactForm(1), {ID: 2, Fields: []model.Field{{ID: 1, Type: "fileupload"}}}}}

	_, err := newSearcher(store).Search(context.Background(), "sara", 0, 1, 20)
	require.NoError(t, err)

	require.Len(t, store.calls, 1)
	assert.Equal(t, model.EntryCriteria{
		Status: model.EntryStatusActive,
		Keys:   []string{"1", "1.3", "1.6", "2"},
		Value:  "sara",
		Limit:  200,
	}, store.calls[0])
}

func TestSearch_ResultShape(t *testing.T) {
	uid := int64(3)
	e := entry(12, 4, 0, map[string]string{"1.3": "Nora", "1.6": "Abdullah"})
	e.CreatedBy = &uid
	store := &fakeStore{forms: []model.Form{contactForm(4)}, entries: []model.Entry{e}}

	page, err := newSearcher(store).Search(context.Background(), "nora", 0, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	r := page.Results[0]
	assert.Equal(t, "Contact 4", r.FormTitle)
	assert.Equal(t, "Nora Abdullah", r.PrimaryValue)
	assert.Equal(t, "2026-01-10 09:00:00", r.DateCreated)
	assert.Equal(t, &uid, r.CreatedBy)
	assert.Equal(t, "https://ops.example.com/wp-admin/admin.php?page=gf_entries&view=entry&id=4&lid=12", r.EditURL)
}

type failingEntries struct{ fakeStore }

func (f *failingEntries) SearchEntries(ctx context.Context, formID int64, c model.EntryCriteria) ([]model.Entry, error) {
	return nil, errors.New("connection reset")
}

func TestSearch_EntryErrorPropagates(t *testing.T) {
	store := &failingEntries{fakeStore{forms: []model.Form{contactForm(1), contactForm(2), contactForm(3)}}}

	_, err := NewSearcher(store, store, Options{FormConcurrency: 2}).Search(context.Background(), "x", 0, 1, 20)
	assert.ErrorContains(t, err, "connection reset")
}

func ids(results []model.SearchResult) []int64 {
	out := make([]int64, len(results))
	for i, r := range results {
		out[i] = r.EntryID
	}
	return out
}
