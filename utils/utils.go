/*******************************************************************************
 *
 *
 * (c) Copyright Merative US L.P. and others 2020-2022
 *
 * SPDX-Licence-Identifier: Apache 2.0
 *
 *******************************************************************************/

// Package utils contains convenience, helper, and utility functions.
package utils

import (
	"log/slog"
	"regexp"
	"runtime"
	"strings"
)

var logger = slog.Default().With("component", "utils")

/*
******************************************************************************************************
Trace functions
******************************************************************************************************
*/

// RE_stripFnPreamble uses regex to extract function names (and not the module path).
var RE_stripFnPreamble = regexp.MustCompile(`^.*\.(.*)$`)

// EnterFnLogger logs and returns the current function name at the start of function execution.
func EnterFnLogger(mylogger *slog.Logger) string {
	fnName := "<unknown>"
	// Skip this function, and fetch the PC and file for its parent
	pc, _, _, ok := runtime.Caller(1)
	if ok {
		fnName = RE_stripFnPreamble.ReplaceAllString(runtime.FuncForPC(pc).Name(), "$1")
	}

	mylogger.Debug("---> " + fnName)
	return fnName
}

// ExitFnLogger logs the current function name at the end of execution.
func ExitFnLogger(mylogger *slog.Logger, s string) {
	mylogger.Debug("<--- " + s)
}

/*
******************************************************************************************************
Helper functions
******************************************************************************************************
*/

// CheckParam checks if param is in args.
func CheckParam(args []string, param string) bool {
	for i := 0; i < len(args); i++ {
		if args[i] == param {
			return true
		}
	}
	return false
}

// InList returns true if item is in listdata, false otherwise.
func InList(listdata []string, item string) bool {
	return CheckParam(listdata, item)
}

// Map applies function f to each element of args.
func Map(args []string, f func(string) string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = f(arg)
	}
	return result
}

// GetOrderedSet parses a comma-separated string and returns a set of strings.
// First-seen order is preserved; empty entries and surrounding whitespace are
// dropped.
func GetOrderedSet(arg string) []string {
	itemList := Map(strings.Split(arg, ","), strings.TrimSpace)
	seen := make(map[string]bool)
	items := []string{}
	for _, item := range itemList {
		if len(item) == 0 || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	return items
}

// AddToOrderedSet adds an item to a set, preserving existing order.
func AddToOrderedSet(items []string, item string) []string {
	if InList(items, item) {
		return items
	}
	return append(items, item)
}

// RemoveFromOrderedSet removes an item from a set, preserving remaining order.
func RemoveFromOrderedSet(items []string, item string) []string {
	result := []string{}
	for _, existing := range items {
		if existing != item {
			result = append(result, existing)
		}
	}
	return result
}

// IsStringEmpty returns true if the given string is empty.
func IsStringEmpty(str string) bool {
	return len(str) == 0
}

// ToChaincodeArgs converts string args to [][]byte args for Invoke.
func ToChaincodeArgs(args ...string) [][]byte {
	bargs := make([][]byte, len(args))
	for i, arg := range args {
		bargs[i] = []byte(arg)
	}
	return bargs
}
