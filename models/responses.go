// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResponseStatus is the outcome carried by every API response.
type ResponseStatus string

const (
	StatusSuccess ResponseStatus = "SUCCESS"
	StatusFailed  ResponseStatus = "FAILED"
)

// Response is the uniform envelope returned by the user endpoints.
// Successful responses carry Message and Data; failed ones carry Error.
type Response struct {
	Status  ResponseStatus `json:"status"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Data    *UserAccount   `json:"data,omitempty"`
}

// IsSuccess reports whether the envelope carries a SUCCESS status.
func (r Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}
