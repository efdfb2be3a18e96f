package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"trends-shop/models"
)

// Keyword tables for the shopping assistant. Matching is lowercase
// substring containment, first intent wins.
var chatIntents = map[string][]string{
	"greeting":   {"hello", "hi", "hey", "good morning", "good afternoon"},
	"products":   {"show products", "what products", "items", "collection"},
	"categories": {"categories", "types", "what do you have"},
	"men":        {"men", "male", "gents"},
	"women":      {"women", "female", "ladies"},
	"kids":       {"kids", "children"},
	"topwear":    {"topwear", "shirt", "t-shirt", "tshirt", "tops"},
	"bottomwear": {"bottomwear", "trouser", "pants", "jeans", "bottoms"},
	"winterwear": {"winterwear", "sweater", "jacket", "hoodie", "winter"},
	"budget":     {"cheap", "budget", "low price"},
	"price":      {"price", "expensive", "cost"},
	"help":       {"help", "support", "assistance"},
	"recommend":  {"recommend", "suggest", "what should i buy", "need help choosing"},
}

const maxRecommendations = 4

type ChatReply struct {
	Intent   string           `json:"intent"`
	Response string           `json:"response"`
	Products []models.Product `json:"products,omitempty"`
}

type ChatbotService struct {
	catalog ProductCatalog
}

func NewChatbotService(catalog ProductCatalog) *ChatbotService {
	return &ChatbotService{catalog: catalog}
}

func (s *ChatbotService) Reply(ctx context.Context, message string) (ChatReply, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return ChatReply{}, err
	}

	lower := strings.ToLower(message)

	if matches(lower, "greeting") {
		return ChatReply{
			Intent:   "greeting",
			Response: "Hello! How can I assist you with your shopping today?",
		}, nil
	}

	if matches(lower, "recommend") {
		switch {
		case matches(lower, "men") && !matches(lower, "women"):
			return recommendReply("Here are some popular products for Men:",
				byCategory(products, "Men", "")), nil
		case matches(lower, "women"):
			return recommendReply("Here are some popular products for Women:",
				byCategory(products, "Women", "")), nil
		case matches(lower, "kids"):
			return recommendReply("Here are some great products for Kids:",
				byCategory(products, "Kids", "")), nil
		case matches(lower, "budget"):
			return recommendReply("Here are some budget-friendly options:",
				byPriceBand(products, "low")), nil
		case matches(lower, "winterwear"):
			return recommendReply("Here are some winter wear picks:",
				byCategory(products, "", "Winterwear")), nil
		case matches(lower, "topwear"):
			return recommendReply("Here are some tops you might like:",
				byCategory(products, "", "Topwear")), nil
		case matches(lower, "bottomwear"):
			return recommendReply("Here are some bottoms you might like:",
				byCategory(products, "", "Bottomwear")), nil
		default:
			return recommendReply("Here are some of our bestsellers:",
				bestsellers(products)), nil
		}
	}

	if matches(lower, "products") {
		return recommendReply(
			fmt.Sprintf("We currently have %d products in our collection. Here are a few:", len(products)),
			firstN(products)), nil
	}

	if matches(lower, "categories") {
		return ChatReply{
			Intent:   "categories",
			Response: categorySummary(products),
		}, nil
	}

	if matches(lower, "budget") {
		return recommendReply("Here are some budget-friendly options:",
			byPriceBand(products, "low")), nil
	}

	if matches(lower, "price") {
		lo, hi := priceRange(products)
		return ChatReply{
			Intent:   "price",
			Response: fmt.Sprintf("Our products range from $%.0f to $%.0f. Ask for budget options or tell me a category you like.", lo, hi),
		}, nil
	}

	if matches(lower, "help") {
		return ChatReply{
			Intent: "help",
			Response: "I can help you with:\n• Recommending products based on categories\n" +
				"• Showing products by price range\n• Answering questions about our collections\n\n" +
				"Try asking: 'Show me men's clothing' or 'Recommend budget options'",
		}, nil
	}

	return ChatReply{
		Intent:   "unknown",
		Response: "I'm not sure I understood that. Try asking for recommendations, categories or prices, or just type 'help'.",
	}, nil
}

func matches(message, intent string) bool {
	for _, keyword := range chatIntents[intent] {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func recommendReply(response string, products []models.Product) ChatReply {
	return ChatReply{Intent: "recommend", Response: response, Products: products}
}

func byCategory(products []models.Product, category, subCategory string) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(category)) {
			continue
		}
		if subCategory != "" && !strings.Contains(strings.ToLower(p.SubCategory), strings.ToLower(subCategory)) {
			continue
		}
		out = append(out, p)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func byPriceBand(products []models.Product, band string) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		switch band {
		case "low":
			if p.Price < 50 {
				filtered = append(filtered, p)
			}
		case "medium":
			if p.Price >= 50 && p.Price <= 150 {
				filtered = append(filtered, p)
			}
		case "high":
			if p.Price > 150 {
				filtered = append(filtered, p)
			}
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	if len(filtered) > maxRecommendations {
		filtered = filtered[:maxRecommendations]
	}
	return filtered
}

func bestsellers(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.Bestseller {
			out = append(out, p)
			if len(out) == maxRecommendations {
				break
			}
		}
	}
	if len(out) == 0 {
		out = firstN(products)
	}
	return out
}

func firstN(products []models.Product) []models.Product {
	if len(products) > maxRecommendations {
		products = products[:maxRecommendations]
	}
	return append([]models.Product{}, products...)
}

func categorySummary(products []models.Product) string {
	categories := uniqueValues(products, func(p models.Product) string { return p.Category })
	subCategories := uniqueValues(products, func(p models.Product) string { return p.SubCategory })
	return fmt.Sprintf("We carry: %s. Styles include: %s.",
		strings.Join(categories, ", "), strings.Join(subCategories, ", "))
}

func uniqueValues(products []models.Product, key func(models.Product) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		v := key(p)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func priceRange(products []models.Product) (float64, float64) {
	if len(products) == 0 {
		return 0, 0
	}
	lo, hi := products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price < lo {
			lo = p.Price
		}
		if p.Price > hi {
			hi = p.Price
		}
	}
	return lo, hi
}
