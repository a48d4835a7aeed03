// Package nagap is a small toolkit for feature engineering around missing
// values in tabular data.
//
// 🚀 What is nagap?
//
//	A zero-surprise library that answers one question for long-format
//	tables: how many consecutive NA cells sit at a given row, walking
//	down or up the column?
//		• Nullable columns: explicit NA cells instead of magic floats
//		• Gap counting: Below / Above over a (row, column) selector
//		• Optional sharding of the row loop across goroutines
//
// Under the hood:
//
//	gap/      — Value, Column, Below, Above, Scan, Count
//	examples/ — runnable end-to-end feature table
//
//	go get github.com/katalvlaran/nagap/gap
package nagap
