// Package strutil provides stateless helpers to search and cut strings:
// containment, prefix and suffix checks (optionally case-insensitive) against
// one or many needles, extraction of the text before or after a separator,
// and word or display-width based truncation.
//
// Every function is pure and safe for concurrent use.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/paccolamano/helpers/strutil"
//	)
//
//	func main() {
//		s := "The quick brown fox jumps over the lazy dog"
//
//		fmt.Println(strutil.Contains([]string{"cat", "fox"}, s)) // true
//		fmt.Println(strutil.EndsWithIgnoreCase("DOG", s))        // true
//		fmt.Println(strutil.Before("fox", s))                    // The quick brown
//		fmt.Println(strutil.After("lazy", s))                    // dog
//		fmt.Println(strutil.LimitWords(s, strutil.WithLimit(3))) // The quick brown...
//		fmt.Println(strutil.Limit(s, strutil.WithLimit(3)))      // The...
//	}
package strutil
