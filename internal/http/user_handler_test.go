package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ankitsahucodes/BookNest-Backend/internal/domain"
	"github.com/ankitsahucodes/BookNest-Backend/internal/repository"
)

func sampleUser() *domain.User {
	return &domain.User{
		ID:          primitive.NewObjectID(),
		Name:        "Asha Rao",
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		Wishlist:    []string{},
		Cart:        []domain.CartItem{},
		Addresses:   []domain.Address{},
		Orders:      []domain.Order{},
	}
}

func TestRegister_Returns201(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{user: sampleUser()})

	rec := doRequest(t, router, "POST", "/profile",
		`{"name":"Asha Rao","email":"asha@example.com","phoneNumber":"9876543210"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp UserCreatedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User added successfully", resp.Message)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestRegister_DuplicateEmailReturns409(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{err: repository.ErrDuplicateEmail})

	rec := doRequest(t, router, "POST", "/profile",
		`{"name":"Asha Rao","email":"asha@example.com","phoneNumber":"9876543210"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetProfile_NotFoundReturns404(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{err: repository.ErrUserNotFound})

	rec := doRequest(t, router, "GET", "/profile/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User not found", resp.Error)
}

func TestGetWishlist_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{wishlist: []string{"b1", "b2"}})

	rec := doRequest(t, router, "GET", "/wishlist/"+primitive.NewObjectID().Hex(), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var wishlist []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&wishlist))
	assert.Equal(t, []string{"b1", "b2"}, wishlist)
}

func TestAddToWishlist_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{wishlist: []string{"b1"}})

	rec := doRequest(t, router, "POST", "/wishlist/"+primitive.NewObjectID().Hex(), `{"bookId":"b1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRemoveFromWishlist_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{wishlist: []string{}})

	rec := doRequest(t, router, "DELETE", "/wishlist/"+primitive.NewObjectID().Hex(), `{"bookId":"b1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestAdjustCart_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{cart: []domain.CartItem{{BookID: "b1", Quantity: 2}}})

	rec := doRequest(t, router, "POST", "/cart/"+primitive.NewObjectID().Hex(), `{"bookId":"b1","quantity":2}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var cart []domain.CartItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestAdjustCart_BadJSONReturns400(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{})

	rec := doRequest(t, router, "POST", "/cart/"+primitive.NewObjectID().Hex(), `{"bookId"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveCartItem_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{cart: []domain.CartItem{}})

	rec := doRequest(t, router, "DELETE", "/cart/"+primitive.NewObjectID().Hex(), `{"bookId":"b1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddAddress_Returns200(t *testing.T) {
	addresses := []domain.Address{{ID: "a1", City: "Pune", Country: domain.DefaultCountry}}
	router := testRouter(catalogStub{}, usersStub{addresses: addresses})

	rec := doRequest(t, router, "POST", "/address/"+primitive.NewObjectID().Hex(), `{"city":"Pune"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Address
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.DefaultCountry, got[0].Country)
}

func TestRemoveAddress_Returns200(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{addresses: []domain.Address{}})

	rec := doRequest(t, router, "DELETE", "/address/"+primitive.NewObjectID().Hex()+"/a1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateAddress_NotFoundReturns404(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{err: repository.ErrAddressNotFound})

	rec := doRequest(t, router, "POST", "/address/update/"+primitive.NewObjectID().Hex()+"/a1", `{"city":"Mumbai"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateAddress_Returns200(t *testing.T) {
	addresses := []domain.Address{{ID: "a1", City: "Mumbai", Country: domain.DefaultCountry}}
	router := testRouter(catalogStub{}, usersStub{addresses: addresses})

	rec := doRequest(t, router, "POST", "/address/update/"+primitive.NewObjectID().Hex()+"/a1", `{"city":"Mumbai"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Address
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Mumbai", got[0].City)
}

func TestPlaceOrder_Returns200(t *testing.T) {
	orders := []domain.Order{{
		ID:          "o1",
		Items:       []domain.OrderItem{{BookID: "b1", Quantity: 1, Price: 269}},
		TotalItems:  1,
		TotalAmount: 269,
		Status:      domain.StatusPlaced,
	}}
	router := testRouter(catalogStub{}, usersStub{orders: orders})

	rec := doRequest(t, router, "POST", "/order-placed/"+primitive.NewObjectID().Hex(),
		`{"items":[{"bookId":"b1","quantity":1,"price":269}],"totalItems":1,"totalAmount":269}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Order
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusPlaced, got[0].Status)
}

func TestPlaceOrder_UserNotFoundReturns404(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{err: repository.ErrUserNotFound})

	rec := doRequest(t, router, "POST", "/order-placed/"+primitive.NewObjectID().Hex(), `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	router := testRouter(catalogStub{}, usersStub{})

	rec := doRequest(t, router, "GET", "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
