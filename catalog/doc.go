/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package catalog provides message sources for dresult: localized message
// templates keyed by error code.
//
// Catalog is an in-memory, concurrency-safe table of templates per locale.
// It can be filled programmatically (Set, Merge) or from files, one file
// per locale named after the locale tag:
//
//	locales/
//	  en.toml
//	  de.yaml
//	  de-CH.toml
//
// Nested tables are flattened into dotted codes, so
//
//	[General]
//	Null = "Null value was provided"
//
// defines the template for "General.Null".
//
// Lookups walk the parent chain of the requested locale (de-CH, de) and then
// the catalog's default locale, so a partially translated locale still
// resolves every code the default locale knows.
//
// Builtin returns the catalog embedded in this package, SQL serves templates
// from a database table and Watch keeps a Catalog in sync with a directory.
// All of them implement apis.Source.
package catalog
