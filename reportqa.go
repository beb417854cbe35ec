// Package reportqa provides a batch question-answering tool for PDF annual
// reports. It scans a directory of reports, builds a retrieval index per
// report, asks a fixed list of questions against each index, and writes the
// flattened answers to a spreadsheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, xlsx/).
package reportqa
