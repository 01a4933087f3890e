package ynab

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/budget-alerts/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	return NewClient(&config.Config{
		YNABURL:      srv.URL,
		YNABToken:    "test-token",
		YNABBudgetID: "budget-1",
	}, log)
}

func TestAccounts_FiltersClosedAndDeleted(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets/budget-1/accounts", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"accounts":[
			{"id":"chk-1","name":"Primary Checking","type":"checking","balance":5000000},
			{"id":"old-1","name":"Old Checking","type":"checking","balance":0,"closed":true},
			{"id":"del-1","name":"Deleted Card","type":"creditCard","balance":0,"deleted":true},
			{"id":"cc-1","name":"Chase Sapphire","type":"creditCard","balance":-2000000}
		]}}`))
	})

	accounts, err := client.Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Primary Checking", accounts[0].Name)
	assert.Equal(t, int64(5_000_000), accounts[0].Balance)
	assert.Equal(t, "Chase Sapphire", accounts[1].Name)
	assert.Equal(t, int64(-2_000_000), accounts[1].Balance)
}

func TestCategories_FlattensGroupsAndFilters(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets/budget-1/categories", r.URL.Path)
		w.Write([]byte(`{"data":{"category_groups":[
			{"name":"Credit Card Payments","categories":[
				{"id":"cat-1","name":"Chase Sapphire","balance":2000000},
				{"id":"cat-2","name":"Old Card","balance":0,"hidden":true}
			]},
			{"name":"Hidden Group","hidden":true,"categories":[
				{"id":"cat-3","name":"Stale","balance":100}
			]},
			{"name":"Monthly Bills","categories":[
				{"id":"cat-4","name":"Rent","balance":1500000}
			]}
		]}}`))
	})

	categories, err := client.Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Chase Sapphire", categories[0].Name)
	assert.Equal(t, "Credit Card Payments", categories[0].CategoryGroupName)
	assert.Equal(t, int64(2_000_000), categories[0].Balance)
	assert.Equal(t, "Rent", categories[1].Name)
	assert.Equal(t, "Monthly Bills", categories[1].CategoryGroupName)
}

func TestBudgets(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets", r.URL.Path)
		w.Write([]byte(`{"data":{"budgets":[{"id":"budget-1","name":"Household"}]}}`))
	})

	budgets, err := client.Budgets(context.Background())

	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "Household", budgets[0].Name)
}

func TestGet_DecodesErrorEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"id":"404.2","name":"resource_not_found","detail":"Budget not found"}}`))
	})

	_, err := client.Accounts(context.Background())

	assert.ErrorContains(t, err, "resource_not_found")
	assert.ErrorContains(t, err, "Budget not found")
}

func TestGet_ReportsUnexpectedStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.Accounts(context.Background())

	assert.ErrorContains(t, err, "unexpected status code: 500")
}
