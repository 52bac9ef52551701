package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erp-admin/internal/erp"
)

func TestListRoutesAreDocumented(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	for _, key := range []string{
		erp.KeyCountries, erp.KeyStates, erp.KeyDepartments, erp.KeyDocumentTypes,
		erp.KeyEconomicActivities, erp.KeyFiscalRegimes, erp.KeyPersonTypes, erp.KeyLotStatuses,
	} {
		base := "/api/v1/" + key
		require.Contains(t, doc.Paths, base)
		assert.Contains(t, doc.Paths[base], "get")
		assert.Contains(t, doc.Paths[base], "post")
		assert.Contains(t, doc.Paths, base+"/search")
		item := doc.Paths[base+"/{id}"]
		for _, method := range []string{"get", "patch", "delete"} {
			assert.Contains(t, item, method, base)
		}
	}
}
