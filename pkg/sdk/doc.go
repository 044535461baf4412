// Package sdk provides an embedded Go client for the fuzzle record store:
// typo-tolerant search over named text fields persisted in Redis.
//
//	client, _ := sdk.New(ctx, sdk.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	_, _ = client.UpsertRecord(ctx, "emp-1", map[string]string{
//	    "first_name": "Georgi",
//	    "last_name":  "Facello",
//	})
//	matches, _ := client.SearchRecords(ctx, sdk.SearchQuery{
//	    Query:   "facelo",
//	    Columns: []string{"first_name", "last_name"},
//	})
//
// For matching and SQL clause compilation without a database, use the root
// fuzzle package instead.
package sdk
