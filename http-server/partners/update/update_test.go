package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"delivery-admin/internal/storage"
	"delivery-admin/internal/view"
)

type MockPartnerUpdater struct {
	mock.Mock
}

func (m *MockPartnerUpdater) GetPartners(ctx context.Context) ([]storage.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Partner), args.Error(1)
}

func (m *MockPartnerUpdater) UpdatePartner(ctx context.Context, id string, upd storage.PartnerUpdate) (*storage.Partner, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Partner), args.Error(1)
}

func stalePartners() []storage.Partner {
	return []storage.Partner{
		{ID: "p1", Name: "Asha", Email: "asha@example.com", Phone: "111", Status: "active", CurrentLoad: 1},
		{ID: "p2", Name: "Bo", Email: "bo@example.com", Phone: "222", Status: "active"},
	}
}

func post(t *testing.T, updater PartnerUpdater, id string, form url.Values, accept string) *httptest.ResponseRecorder {
	t.Helper()

	rnd, err := view.New()
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/partners/{id}", UpdatePartner(slog.Default(), updater, rnd))

	req := httptest.NewRequest(http.MethodPost, "/partners/"+id, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) []storage.Partner {
	t.Helper()

	var got []storage.Partner
	require.NoError(t, render.DecodeJSON(strings.NewReader(rr.Body.String()), &got))
	return got
}

func TestUpdatePartner_SendsFormFieldsAsPosted(t *testing.T) {
	updater := new(MockPartnerUpdater)

	want := storage.PartnerUpdate{Name: " Asha K ", Email: "ak@example.com", Phone: "999", Status: "inactive"}
	returned := &storage.Partner{ID: "p1", Name: "Asha K", Email: "ak@example.com", Phone: "999", Status: "inactive", CurrentLoad: 1}

	updater.On("UpdatePartner", mock.Anything, "p1", want).Return(returned, nil)
	updater.On("GetPartners", mock.Anything).Return(stalePartners(), nil)

	rr := post(t, updater, "p1", url.Values{
		"name":   {" Asha K "},
		"email":  {"ak@example.com"},
		"phone":  {"999"},
		"status": {"inactive"},
	}, "application/json")

	assert.Equal(t, http.StatusOK, rr.Code)
	got := decode(t, rr)
	require.Len(t, got, 2)
	assert.Equal(t, *returned, got[0])
	assert.Equal(t, stalePartners()[1], got[1])
	updater.AssertExpectations(t)
}

func TestUpdatePartner_BrowserRedirectsToList(t *testing.T) {
	updater := new(MockPartnerUpdater)
	updater.On("UpdatePartner", mock.Anything, "p2", mock.Anything).
		Return(&storage.Partner{ID: "p2", Name: "Robert", Status: "active"}, nil)

	rr := post(t, updater, "p2", url.Values{"name": {"Robert"}, "status": {"active"}}, "")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/partners", rr.Header().Get("Location"))
	updater.AssertNotCalled(t, "GetPartners", mock.Anything)
}

func TestUpdatePartner_InvalidStatus(t *testing.T) {
	updater := new(MockPartnerUpdater)

	rr := post(t, updater, "p1", url.Values{"name": {"Asha"}, "status": {"retired"}}, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	updater.AssertNotCalled(t, "UpdatePartner", mock.Anything, mock.Anything, mock.Anything)
	updater.AssertNotCalled(t, "GetPartners", mock.Anything)
}

func TestUpdatePartner_BackendErrorLeavesListUnchanged(t *testing.T) {
	updater := new(MockPartnerUpdater)
	updater.On("UpdatePartner", mock.Anything, "p2", mock.Anything).Return(nil, errors.New("502 bad gateway"))
	updater.On("GetPartners", mock.Anything).Return(stalePartners(), nil)

	rr := post(t, updater, "p2", url.Values{"name": {"Robert"}, "status": {"active"}}, "application/json")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, stalePartners(), decode(t, rr))
	updater.AssertExpectations(t)
}
