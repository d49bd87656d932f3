// Package teamname turns the raw team names scraped from tournament brackets
// into one canonical string per real-world institution or franchise.
//
// Decades of renames, abbreviations, relocations, and shared names mean a
// single school can appear under a dozen spellings. The approach that has
// proven most consistent is to expand every abbreviation and then strip the
// words that carry no identity: the result is not always the school's
// preferred styling, but it is unique and stable across years.
//
// Normalize is the entry point for universities; NormalizeProfessional runs
// afterwards for professional leagues. BuildDisambiguator inspects a whole
// page once to decide which of several same-named schools is meant.
package teamname
