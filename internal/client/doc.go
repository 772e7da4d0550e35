// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the modelhub command-line application.
//
// It wires configuration, logging, the local session storage, the HTTP
// client and the session store into one process lifecycle, and exposes the
// account, model, comment and like operations as commands. Results are
// printed as indented JSON on stdout; failures go to stderr.
package client
