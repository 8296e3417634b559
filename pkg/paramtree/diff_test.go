package paramtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

func TestDiff(t *testing.T) {
	before := paramtree.MustNew(gateway(), "")
	afterRoot := gateway()
	after := paramtree.MustNew(afterRoot, "")

	require.NoError(t, after.Set("InternetGatewayDevice.Time.NTPServer1", "ntp.example.com"))
	require.NoError(t, after.Unset("InternetGatewayDevice.Time.NTPServer2"))
	require.NoError(t, after.Set("InternetGatewayDevice.ManagementServer.URL", "https://acs.example.com"))

	changes := paramtree.Diff(before, after)
	assert.Equal(t, []paramtree.Change{
		{Kind: paramtree.ChangeAdded, Path: "InternetGatewayDevice.ManagementServer.URL", New: "https://acs.example.com"},
		{Kind: paramtree.ChangeModified, Path: "InternetGatewayDevice.Time.NTPServer1", Old: "pool.ntp.org", New: "ntp.example.com"},
		{Kind: paramtree.ChangeRemoved, Path: "InternetGatewayDevice.Time.NTPServer2", Old: "time.google.com"},
	}, changes)

	assert.Empty(t, paramtree.Diff(before, paramtree.MustNew(gateway(), "")))
	assert.Len(t, paramtree.Diff(nil, before), len(before.Flatten()))
}

func TestComparePaths(t *testing.T) {
	assert.Negative(t, paramtree.ComparePaths("A.WANDevice.2.X", "A.WANDevice.10.X"))
	assert.Positive(t, paramtree.ComparePaths("A.B", "A.A"))
	assert.Negative(t, paramtree.ComparePaths("A.B.", "A.B.C"))
	assert.Zero(t, paramtree.ComparePaths("A.B", "A.B"))
}

func TestFingerprint(t *testing.T) {
	a := paramtree.MustNew(gateway(), "")
	b := paramtree.MustNew(gateway(), "")
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.Set("InternetGatewayDevice.Time.NTPServer1", "other"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	empty := paramtree.MustNew(igd.NewInternetGatewayDevice(), "")
	assert.Equal(t, empty.Fingerprint(), paramtree.MustNew(igd.NewInternetGatewayDevice().WithTime(igd.NewTime()), "").Fingerprint(),
		"empty objects do not change the fingerprint")
}

func TestChangeKindString(t *testing.T) {
	assert.Equal(t, "added", paramtree.ChangeAdded.String())
	assert.Equal(t, "removed", paramtree.ChangeRemoved.String())
	assert.Equal(t, "modified", paramtree.ChangeModified.String())
}
