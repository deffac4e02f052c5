package runner

import (
	"strings"

	"github.com/go-pkgz/stringutils"
)

// hintSig matches an execution error against a known failure signature.
// All substrings in all have to be present, plus at least one from any (when
// set). Matching is done on the lowercased error text.
type hintSig struct {
	all    []string
	any    []string
	advice string
}

// hintSigs is a fixed table of known cassandra failure signatures, first match
// wins. More specific signatures go before generic ones.
var hintSigs = []hintSig{
	{
		any:    []string{"unauthorized", "not authorized", "permission"},
		advice: "the user lacks permissions for this operation; check GRANT settings for the keyspace or table",
	},
	{
		all:    []string{"keyspace"},
		any:    []string{"does not exist", "unconfigured", "non existing"},
		advice: "the keyspace does not exist; create it or check the name and the USE statement",
	},
	{
		all:    []string{"table"},
		any:    []string{"does not exist", "unconfigured", "non existing"},
		advice: "the table does not exist; create it or check the table name and keyspace",
	},
	{
		all:    []string{"syntax"},
		advice: "the statement has a syntax error; check it near the position reported in the message",
	},
	{
		any:    []string{"allow filtering"},
		advice: "the query can't be served efficiently; add an index, restrict by partition key, or append ALLOW FILTERING deliberately",
	},
	{
		any:    []string{"partition key", "primary key"},
		advice: "the query must restrict the full partition key; check the WHERE clause against the table's key",
	},
	{
		any:    []string{"timeout", "timed out"},
		advice: "the request timed out; reduce the data requested with LIMIT, paginate, or raise the request timeout",
	},
	{
		any:    []string{"consistency", "replica", "unavailable"},
		advice: "not enough replicas responded; check cluster health and the consistency level",
	},
}

// HintFor returns a best-effort suggestion for an execution error message, or
// an empty string when the message matches no known signature.
func HintFor(msg string) string {
	low := strings.ToLower(msg)
	for _, sig := range hintSigs {
		if len(sig.any) > 0 && !stringutils.ContainsAnySubstring(low, sig.any) {
			continue
		}
		if !containsAll(low, sig.all) {
			continue
		}
		return sig.advice
	}
	return ""
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
