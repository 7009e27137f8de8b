package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelops/models"
)

func TestRoomTypeCRUDEndpoints(t *testing.T) {
	db, router := newTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/room-types", map[string]interface{}{
		"name":      "Suite",
		"price":     500000,
		"capacity":  4,
		"amenities": []string{"wifi", "minibar", "bathtub"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.RoomType
	decodeBody(t, w, &created)
	assert.Equal(t, "Suite", created.Name)

	// Sức chứa 0 bị từ chối
	w = doRequest(t, router, http.MethodPost, "/api/room-types", map[string]interface{}{
		"name":     "Lỗi",
		"price":    100000,
		"capacity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/room-types/%d", created.ID),
		map[string]interface{}{
			"name":     "Suite VIP",
			"price":    600000,
			"capacity": 4,
		})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.RoomType
	decodeBody(t, w, &updated)
	assert.Equal(t, "Suite VIP", updated.Name)
	assert.Equal(t, float64(600000), updated.Price)

	// Còn phòng tham chiếu thì không xóa được
	room := models.Room{RoomNumber: "701", RoomTypeID: created.ID, Status: 1}
	require.NoError(t, db.Create(&room).Error)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/room-types/%d", created.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	require.NoError(t, db.Delete(&models.Room{}, room.RoomId).Error)
	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/room-types/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/api/room-types/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChargeEndpoints(t *testing.T) {
	_, router := newTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/additional-charges", map[string]interface{}{
		"name":       "Ăn sáng",
		"price":      50000,
		"chargeType": "per_person",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.AdditionalCharge
	decodeBody(t, w, &created)
	assert.True(t, created.IsActive)

	// chargeType ngoài tập cho phép
	w = doRequest(t, router, http.MethodPost, "/api/additional-charges", map[string]interface{}{
		"name":       "Lỗi",
		"price":      1000,
		"chargeType": "per_hour",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/additional-charges", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var charges []models.AdditionalCharge
	decodeBody(t, w, &charges)
	assert.Len(t, charges, 1)
}

func TestStaffEndpoints(t *testing.T) {
	db, router := newTestEnv(t)

	w := doRequest(t, router, http.MethodPost, "/api/staff", map[string]interface{}{
		"name":     "Bùi Thị I",
		"email":    "i@example.com",
		"hireDate": "2025-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Email trùng
	w = doRequest(t, router, http.MethodPost, "/api/staff", map[string]interface{}{
		"name":     "Bùi Thị I 2",
		"email":    "i@example.com",
		"hireDate": "2025-06-01",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Nhân viên đã nghỉ không được liệt kê
	former := models.Staff{Name: "Đã nghỉ", Email: "old@example.com", HireDate: testDate(2020, 1, 1)}
	require.NoError(t, db.Create(&former).Error)
	require.NoError(t, db.Model(&former).Update("is_active", false).Error)

	w = doRequest(t, router, http.MethodGet, "/api/staff", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var staff []models.Staff
	decodeBody(t, w, &staff)
	require.Len(t, staff, 1)
	assert.Equal(t, "Bùi Thị I", staff[0].Name)
}
