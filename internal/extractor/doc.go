// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extractor recognizes one-time-password seeds in free-form
// clipboard text.
//
// Recognition is an ordered chain of patterns evaluated first-match-wins:
//  1. an otpauth://totp/ URI anywhere in the text;
//  2. rejection of any other link-bearing text;
//  3. a bare Base32 secret of 16 to 64 characters making up the whole text.
//
// Link-bearing text is never searched for a bare secret: URLs routinely
// embed long alphanumeric tokens that are not secrets.
package extractor
