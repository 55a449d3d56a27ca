package pathutil_test

import (
	"fmt"

	"elastic-views/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/search/?q=elastic&p=2"))
	fmt.Println(pathutil.NormalizePath("/search/json/?q=elastic"))
	fmt.Println(pathutil.NormalizePath("/swagger/index.html"))
	fmt.Println(pathutil.NormalizePath("/admin/login"))

	// Output:
	// /search
	// /search/json
	// /swagger/*
	// /:unmatched
}
