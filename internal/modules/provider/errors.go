package provider

import "errors"

var ErrProviderNotFound = errors.New("provider not found")

// notFoundMessage is the public error text for an unknown provider.
const notFoundMessage = "Provider not found"
