package xcodeproj

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role names one object in the manifest. Every reference to that object
// uses the identifier assigned to its role.
type Role string

const (
	RoleProject             Role = "project"
	RoleAppTarget           Role = "app_target" // native target and product reference
	RoleAppDelegate         Role = "app_delegate"
	RoleMainSwift           Role = "main_swift"
	RoleInfoPlist           Role = "info_plist"
	RoleAssets              Role = "assets"
	RoleProductsGroup       Role = "products_group"
	RoleMainGroup           Role = "main_group"
	RoleFrameworksPhase     Role = "frameworks_phase"
	RoleSourcesPhase        Role = "sources_phase"
	RoleResourcesPhase      Role = "resources_phase"
	RoleAppDelegateBuild    Role = "app_delegate_build"
	RoleMainSwiftBuild      Role = "main_swift_build"
	RoleAssetsBuild         Role = "assets_build"
	RoleDebugConfig         Role = "debug_config"
	RoleReleaseConfig       Role = "release_config"
	RoleProjectConfigList   Role = "project_config_list"
	RoleTargetConfigList    Role = "target_config_list"
	RoleTargetDebugConfig   Role = "target_debug_config"
	RoleTargetReleaseConfig Role = "target_release_config"
)

// Roles lists every role in generation order.
var Roles = []Role{
	RoleProject,
	RoleAppTarget,
	RoleAppDelegate,
	RoleMainSwift,
	RoleInfoPlist,
	RoleAssets,
	RoleProductsGroup,
	RoleMainGroup,
	RoleFrameworksPhase,
	RoleSourcesPhase,
	RoleResourcesPhase,
	RoleAppDelegateBuild,
	RoleMainSwiftBuild,
	RoleAssetsBuild,
	RoleDebugConfig,
	RoleReleaseConfig,
	RoleProjectConfigList,
	RoleTargetConfigList,
	RoleTargetDebugConfig,
	RoleTargetReleaseConfig,
}

// IDLength is the number of hex characters in an object identifier.
const IDLength = 24

// maxAttempts bounds regeneration when a source keeps repeating itself.
const maxAttempts = 64

// IdentifierSet maps each role to its object identifier.
type IdentifierSet map[Role]string

// Source produces random UUIDs. uuid.NewRandom satisfies it.
type Source func() (uuid.UUID, error)

// NewIdentifierSet assigns a fresh identifier to every role.
func NewIdentifierSet() (IdentifierSet, error) {
	return NewIdentifierSetFrom(uuid.NewRandom)
}

// NewIdentifierSetFrom is NewIdentifierSet with an explicit UUID source.
// A value already handed to another role is discarded and drawn again.
func NewIdentifierSetFrom(next Source) (IdentifierSet, error) {
	ids := make(IdentifierSet, len(Roles))
	seen := make(map[string]bool, len(Roles))

	for _, role := range Roles {
		var id string
		for attempt := 0; ; attempt++ {
			if attempt == maxAttempts {
				return nil, fmt.Errorf("no unique identifier for %s after %d attempts", role, maxAttempts)
			}
			u, err := next()
			if err != nil {
				return nil, fmt.Errorf("generating identifier for %s: %w", role, err)
			}
			id = FormatID(u)
			if !seen[id] {
				break
			}
		}
		seen[id] = true
		ids[role] = id
	}
	return ids, nil
}

// FormatID turns a UUID into an object identifier: hex digits only,
// upper case, first 24 characters.
func FormatID(u uuid.UUID) string {
	hex := strings.ReplaceAll(u.String(), "-", "")
	return strings.ToUpper(hex[:IDLength])
}

// Values returns the identifiers in role order.
func (s IdentifierSet) Values() []string {
	out := make([]string, 0, len(Roles))
	for _, role := range Roles {
		out = append(out, s[role])
	}
	return out
}

// templateData exposes the set to templates keyed by role name.
func (s IdentifierSet) templateData() map[string]string {
	m := make(map[string]string, len(s))
	for role, id := range s {
		m[string(role)] = id
	}
	return m
}
