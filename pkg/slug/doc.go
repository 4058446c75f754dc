// Package slug converts free text into URL and filename safe slugs.
//
//	slug.Make("Spring Sale: 0% APR!")            // "spring-sale-0-apr"
//	slug.Make("Crème brûlée", slug.MaxLength(5)) // "creme"
//	slug.Make("Tom & Jerry", slug.Replace("&", "and"), slug.Separator("_"))
//	// "tom_and_jerry"
package slug
