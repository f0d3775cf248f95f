// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

// Package validation wraps go-playground/validator v10 with a process-wide
// validator instance and translates field errors into short, user facing
// messages.
//
// Mining requests and configuration both declare their constraints as struct
// tags and are checked through ValidateStruct:
//
//	type Request struct {
//	    ItemSets   [][]string `validate:"required"`
//	    MinSupport int        `validate:"min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr
//	}
//
// The API layer turns a *RequestValidationError into a VALIDATION_ERROR
// response using Message and Details.
package validation
