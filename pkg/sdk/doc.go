// Package tradepost provides a Go client for the tradepost classifieds
// search service backed by Redis.
//
// The client embeds the full search pipeline: typo-tolerant category
// resolution, strict filtered queries and the fuzzy broad-scan fallback.
//
//	client, _ := tradepost.New(ctx, tradepost.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	client.Listings().Upsert(ctx, tradepost.Listing{
//	    ID:       "ad-123",
//	    Title:    "iPhone 13 Pro",
//	    Category: "Electronics",
//	    Price:    650,
//	})
//	results, _ := client.Search(ctx, tradepost.SearchQuery{Text: "iphon"})
package tradepost
