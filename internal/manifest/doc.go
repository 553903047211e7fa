// Package manifest loads, edits and saves the uvmpackage.json project
// manifest. The document is kept as an ordered list of top-level members with
// their raw JSON values, so editing the dependencies array leaves every other
// key in place and byte-for-byte unchanged. The manifest shape is checked
// against an embedded JSON schema on load.
package manifest
