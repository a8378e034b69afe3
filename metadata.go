package phantomkeep

import "github.com/phantomkeep/phantomkeep/internal/metadata"

// VaultMetadata is the structured metadata record of one vault: its label
// and file listing. Primary and phantom vaults each carry their own.
type VaultMetadata = metadata.Vault

// MetadataEntry describes one file in a vault.
type MetadataEntry = metadata.Entry

// MarshalMetadata encodes a vault record to its wire form. Encoding is
// deterministic: identical records always produce identical bytes.
func MarshalMetadata(v *VaultMetadata) ([]byte, error) {
	return metadata.Marshal(v)
}

// UnmarshalMetadata decodes wire bytes into a vault record.
func UnmarshalMetadata(data []byte, v *VaultMetadata) error {
	return metadata.Unmarshal(data, v)
}
