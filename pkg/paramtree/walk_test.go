package paramtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/igd"
	"github.com/cwmp-model/cwmp-go/pkg/paramtree"
)

func TestNamesNextLevel(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	names, err := tree.Names("InternetGatewayDevice.Time.", true)
	require.NoError(t, err)
	require.Len(t, names, 13)
	assert.Equal(t, paramtree.Name{Path: "InternetGatewayDevice.Time.Enable", Writable: true}, names[0])
	assert.Equal(t, paramtree.Name{Path: "InternetGatewayDevice.Time.Status", Writable: false}, names[1])

	names, err = tree.Names("InternetGatewayDevice.WANDevice.", true)
	require.NoError(t, err)
	assert.Equal(t, []paramtree.Name{{Path: "InternetGatewayDevice.WANDevice.1."}}, names)

	names, err = tree.Names("InternetGatewayDevice.", true)
	require.NoError(t, err)
	var paths []string
	for _, n := range names {
		paths = append(paths, n.Path)
	}
	assert.Contains(t, paths, "InternetGatewayDevice.DeviceSummary")
	assert.Contains(t, paths, "InternetGatewayDevice.DeviceInfo.")
	assert.Contains(t, paths, "InternetGatewayDevice.LANDevice.")
	assert.NotContains(t, paths, "InternetGatewayDevice.WANDevice.1.")
	assert.NotContains(t, paths, "InternetGatewayDevice.")
}

func TestNamesSubtree(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	names, err := tree.Names("InternetGatewayDevice.WANDevice.1.WANConnectionDevice.", false)
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.WANConnectionDevice.", names[0].Path)
	assert.Equal(t, "InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.", names[1].Path)

	names, err = tree.Names("InternetGatewayDevice.Time.NTPServer1", false)
	require.NoError(t, err)
	assert.Equal(t, []paramtree.Name{{Path: "InternetGatewayDevice.Time.NTPServer1", Writable: true}}, names)

	_, err = tree.Names("InternetGatewayDevice.Time.NTPServer1", true)
	assert.ErrorIs(t, err, paramtree.ErrNoSuchObject)

	all, err := tree.Names("", false)
	require.NoError(t, err)
	assert.Equal(t, "InternetGatewayDevice.", all[0].Path)
	assert.Greater(t, len(all), 100)
}

func TestWalkSkipAndStop(t *testing.T) {
	tree := paramtree.MustNew(gateway(), "")

	var objects []string
	err := tree.Walk(func(e paramtree.Entry) error {
		if e.Kind == paramtree.EntryObject {
			objects = append(objects, e.Path)
			if e.Path == "InternetGatewayDevice.WANDevice.1." {
				return paramtree.SkipObject
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, objects, "InternetGatewayDevice.WANDevice.1.")
	assert.NotContains(t, objects, "InternetGatewayDevice.WANDevice.1.WANConnectionDevice.1.")

	stop := errors.New("stop")
	count := 0
	err = tree.Walk(func(e paramtree.Entry) error {
		count++
		if count == 3 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, count)
}

func TestWalkPresence(t *testing.T) {
	tree := paramtree.MustNew(igd.NewInternetGatewayDevice().WithTime(igd.NewTime()), "")

	present := map[string]bool{}
	_ = tree.Walk(func(e paramtree.Entry) error {
		if e.Kind == paramtree.EntryObject {
			present[e.Path] = e.Present
		}
		return nil
	})
	assert.True(t, present["InternetGatewayDevice."])
	assert.True(t, present["InternetGatewayDevice.Time."])
	assert.False(t, present["InternetGatewayDevice.DeviceInfo."])

	var instances int
	err := tree.WalkFrom("InternetGatewayDevice.WANDevice.", func(e paramtree.Entry) error {
		if e.Kind == paramtree.EntryCollection {
			instances = e.Instances
		}
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, instances)

	err = tree.WalkFrom("InternetGatewayDevice.Time.Enable", func(paramtree.Entry) error { return nil })
	assert.ErrorIs(t, err, paramtree.ErrNoSuchObject)
}

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "object", paramtree.EntryObject.String())
	assert.Equal(t, "collection", paramtree.EntryCollection.String())
	assert.Equal(t, "parameter", paramtree.EntryParameter.String())
}
