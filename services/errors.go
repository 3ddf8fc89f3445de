package services

import "errors"

var (
	// validation-kind — rejected before any cart mutation
	ErrProductNotFound     = errors.New("product not found")
	ErrUnknownOption       = errors.New("option does not belong to product")
	ErrIncompleteVariation = errors.New("variation is missing an option for a variation type")

	ErrNotProductOwner = errors.New("product belongs to another vendor")
	ErrVendorExists    = errors.New("vendor profile already exists")
)
