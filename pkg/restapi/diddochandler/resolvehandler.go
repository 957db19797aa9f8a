/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package diddochandler exposes the core's resolve operation over HTTP.
package diddochandler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jonnycrunch/sidetree-core/pkg/document"
	"github.com/jonnycrunch/sidetree-core/pkg/restapi/common"
)

// Resolver resolves a DID's unique suffix into its current document.
type Resolver interface {
	Resolve(uniqueSuffix string) (document.Document, bool)
}

// ResolveHandler resolves DID documents over GET {basePath}/{id}.
type ResolveHandler struct {
	*handler
	resolver Resolver
}

// NewResolveHandler returns a new DID document resolve handler.
func NewResolveHandler(basePath string, resolver Resolver) *ResolveHandler {
	rh := &ResolveHandler{resolver: resolver}
	rh.handler = newHandler(fmt.Sprintf("%s/{id}", basePath), http.MethodGet, rh.Resolve)

	return rh
}

// Resolve handles a resolve request for the DID whose unique suffix is the {id} path variable.
func (h *ResolveHandler) Resolve(rw http.ResponseWriter, req *http.Request) {
	uniqueSuffix := mux.Vars(req)["id"]
	if uniqueSuffix == "" {
		common.WriteError(rw, http.StatusBadRequest, fmt.Errorf("identifier is missing"))
		return
	}

	doc, ok := h.resolver.Resolve(uniqueSuffix)
	if !ok {
		common.WriteError(rw, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}

	common.WriteResponse(rw, http.StatusOK, document.ResolutionResult{
		Context:  "https://www.w3.org/ns/did-resolution/v1",
		Document: doc,
	})
}
