package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"wealthtracker.com/dto"
	"wealthtracker.com/types"
)

type netWorthResponse struct {
	Success bool                 `json:"success"`
	Data    dto.NetWorthResponse `json:"data"`
	Error   string               `json:"error"`
}

func TestGetNetWorth(t *testing.T) {
	app, testDB := setupTestApp(t, &stubMarketAPI{})

	assert.NoError(t, testDB.Create(&types.Asset{Type: "stock", Name: "A", CurrentValue: 1500}).Error)
	assert.NoError(t, testDB.Create(&types.Asset{Type: "bond", Name: "B", CurrentValue: 500}).Error)
	assert.NoError(t, testDB.Create(&types.Property{Address: "12 Elm Street", PurchasePrice: 1, CurrentValue: 121000}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/net-worth", nil)
	resp, _ := app.Test(req)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var response netWorthResponse
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.True(t, response.Success)
	assert.Equal(t, 2000.0, response.Data.TotalAssets)
	assert.Equal(t, 121000.0, response.Data.TotalProperties)
	assert.Equal(t, 123000.0, response.Data.NetWorth)
}

func TestSnapshotNetWorthOncePerDay(t *testing.T) {
	_, testDB := setupTestApp(t, &stubMarketAPI{})
	controller := NewNetWorthController(testDB)

	assert.NoError(t, testDB.Create(&types.Asset{Type: "stock", Name: "A", CurrentValue: 1500}).Error)

	assert.NoError(t, controller.SnapshotNetWorth())
	assert.NoError(t, controller.SnapshotNetWorth())

	var count int64
	testDB.Model(&types.NetWorthSnapshot{}).Count(&count)
	assert.Equal(t, int64(1), count)

	var snapshot types.NetWorthSnapshot
	assert.NoError(t, testDB.First(&snapshot).Error)
	assert.Equal(t, 1500.0, snapshot.TotalAssets)
	assert.Equal(t, 1500.0, snapshot.NetWorth)
}

func TestGetNetWorthHistory(t *testing.T) {
	app, testDB := setupTestApp(t, &stubMarketAPI{})
	controller := NewNetWorthController(testDB)

	assert.NoError(t, testDB.Create(&types.Property{Address: "12 Elm Street", PurchasePrice: 1, CurrentValue: 50000}).Error)
	assert.NoError(t, controller.SnapshotNetWorth())

	req := httptest.NewRequest(http.MethodGet, "/api/net-worth/history", nil)
	resp, _ := app.Test(req)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var response struct {
		Success bool                           `json:"success"`
		Data    []dto.NetWorthSnapshotResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(body, &response))
	assert.Len(t, response.Data, 1)
	assert.Equal(t, 50000.0, response.Data[0].NetWorth)
}
