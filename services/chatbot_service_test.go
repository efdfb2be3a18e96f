package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trends-shop/models"
)

func chatCatalog() *stubCatalog {
	return &stubCatalog{products: []models.Product{
		{ID: "p1", Name: "Oxford Shirt", Price: 20, Category: "Men", SubCategory: "Topwear", Bestseller: true},
		{ID: "p2", Name: "Summer Dress", Price: 45, Category: "Women", SubCategory: "Topwear"},
		{ID: "p3", Name: "Kids Hoodie", Price: 30, Category: "Kids", SubCategory: "Winterwear"},
		{ID: "p4", Name: "Wool Coat", Price: 180, Category: "Women", SubCategory: "Winterwear", Bestseller: true},
		{ID: "p5", Name: "Denim Jeans", Price: 55, Category: "Men", SubCategory: "Bottomwear"},
	}}
}

func TestChatbotGreeting(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "Hello there")
	require.NoError(t, err)
	assert.Equal(t, "greeting", reply.Intent)
	assert.Empty(t, reply.Products)
}

func TestChatbotRecommendWomen(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "recommend something for women")
	require.NoError(t, err)
	assert.Equal(t, "recommend", reply.Intent)
	require.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.Equal(t, "Women", p.Category)
	}
}

// "women" contains "men" as a substring; the men branch must not win.
func TestChatbotWomenDoesNotMatchMen(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "suggest womens clothing")
	require.NoError(t, err)
	for _, p := range reply.Products {
		assert.NotEqual(t, "Men", p.Category)
	}
}

func TestChatbotRecommendBudget(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "recommend something cheap")
	require.NoError(t, err)
	require.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.Less(t, p.Price, 50.0)
	}
}

func TestChatbotRecommendTopwear(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "suggest a shirt")
	require.NoError(t, err)
	assert.Equal(t, "recommend", reply.Intent)
	require.NotEmpty(t, reply.Products)
	for _, p := range reply.Products {
		assert.Equal(t, "Topwear", p.SubCategory)
	}
}

func TestChatbotRecommendBottomwear(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "recommend some jeans")
	require.NoError(t, err)
	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Denim Jeans", reply.Products[0].Name)
}

func TestChatbotRecommendDefaultsToBestsellers(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "what should i buy")
	require.NoError(t, err)
	require.Len(t, reply.Products, 2)
	for _, p := range reply.Products {
		assert.True(t, p.Bestseller)
	}
}

func TestChatbotPriceRange(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "how much do things cost")
	require.NoError(t, err)
	assert.Equal(t, "price", reply.Intent)
	assert.Contains(t, reply.Response, "$20")
	assert.Contains(t, reply.Response, "$180")
}

func TestChatbotCategories(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "what do you have")
	require.NoError(t, err)
	assert.Equal(t, "categories", reply.Intent)
	assert.Contains(t, reply.Response, "Men")
	assert.Contains(t, reply.Response, "Winterwear")
}

func TestChatbotUnknown(t *testing.T) {
	svc := NewChatbotService(chatCatalog())

	reply, err := svc.Reply(context.Background(), "quantum flux capacitor")
	require.NoError(t, err)
	assert.Equal(t, "unknown", reply.Intent)
}

func TestChatbotRecommendationCap(t *testing.T) {
	products := []models.Product{}
	for i := 0; i < 10; i++ {
		products = append(products, models.Product{
			ID: string(rune('a' + i)), Name: "Item", Price: 10, Category: "Men", SubCategory: "Topwear",
		})
	}
	svc := NewChatbotService(&stubCatalog{products: products})

	reply, err := svc.Reply(context.Background(), "show products")
	require.NoError(t, err)
	assert.Len(t, reply.Products, maxRecommendations)
}
