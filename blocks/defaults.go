package blocks

// MergeVariantDefaults produces a complete value map for a block by layering
// the variant schema's defaults under whatever the editor already holds. The
// schema is authoritative: keys the schema does not declare are dropped, and
// values whose shape no longer matches the declared kind are replaced by the
// field default. Merging an already merged map returns it unchanged.
func (r *Registry) MergeVariantDefaults(blockType BlockType, variantID string, existing map[string]any) map[string]any {
	schema := r.ResolveVariant(blockType, variantID)
	return mergeFields(schema.Fields, existing)
}

// VariantDefaults returns the pristine default values for a variant, the map
// a freshly inserted block starts from.
func (r *Registry) VariantDefaults(blockType BlockType, variantID string) map[string]any {
	return r.MergeVariantDefaults(blockType, variantID, nil)
}

// CreateListItemDefaults builds the default value map for one item of a list
// field. Non-list fields yield an empty map.
func (r *Registry) CreateListItemDefaults(blockType BlockType, variantID, fieldName string) map[string]any {
	schema := r.ResolveVariant(blockType, variantID)
	for _, field := range schema.Fields {
		if field.Name == fieldName && field.IsList() {
			return mergeFields(field.Fields, nil)
		}
	}
	return map[string]any{}
}

// ResolveVariant walks the fallback chain: the requested variant, then the
// block type's default variant, then the generic placeholder. Editing never
// dead-ends on a stale variant id.
func (r *Registry) ResolveVariant(blockType BlockType, variantID string) VariantSchema {
	def := r.BlockTypeDefinition(blockType)
	if schema, ok := def.Variant(variantID); ok {
		return schema
	}
	if schema, ok := def.Variant(def.DefaultVariant); ok {
		return schema
	}
	placeholder := PlaceholderDefinition(blockType)
	schema, _ := placeholder.Variant(placeholder.DefaultVariant)
	return schema
}

// MergeVariantDefaults merges against the built-in catalog.
func MergeVariantDefaults(blockType BlockType, variantID string, existing map[string]any) map[string]any {
	return defaultRegistry.MergeVariantDefaults(blockType, variantID, existing)
}

// CreateListItemDefaults builds a list item against the built-in catalog.
func CreateListItemDefaults(blockType BlockType, variantID, fieldName string) map[string]any {
	return defaultRegistry.CreateListItemDefaults(blockType, variantID, fieldName)
}

func mergeFields(fields []FieldDefinition, existing map[string]any) map[string]any {
	merged := make(map[string]any, len(fields))
	for _, field := range fields {
		if field.IsList() {
			merged[field.Name] = mergeListValue(field, existing[field.Name])
			continue
		}

		value, ok := existing[field.Name]
		if ok && compatibleValue(field, value) {
			merged[field.Name] = value
			continue
		}
		merged[field.Name] = fieldDefault(field)
	}
	return merged
}

func mergeListValue(field FieldDefinition, raw any) []map[string]any {
	var items []map[string]any

	switch existing := raw.(type) {
	case []map[string]any:
		for _, item := range existing {
			items = append(items, mergeFields(field.Fields, item))
		}
	case []any:
		for _, entry := range existing {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, mergeFields(field.Fields, item))
		}
	}

	for len(items) < field.MinItems {
		items = append(items, mergeFields(field.Fields, nil))
	}
	if field.MaxItems > 0 && len(items) > field.MaxItems {
		items = items[:field.MaxItems]
	}
	if items == nil {
		items = []map[string]any{}
	}
	return items
}

func fieldDefault(field FieldDefinition) any {
	if field.DefaultValue != nil && compatibleValue(field, field.DefaultValue) {
		return field.DefaultValue
	}

	switch field.Kind {
	case FieldNumber:
		return 0
	case FieldSwitch:
		return false
	default:
		return ""
	}
}

func compatibleValue(field FieldDefinition, value any) bool {
	switch field.Kind {
	case FieldNumber:
		switch value.(type) {
		case int, int32, int64, float32, float64:
			return true
		}
		return false
	case FieldSwitch:
		_, ok := value.(bool)
		return ok
	case FieldSelect:
		selected, ok := value.(string)
		if !ok {
			return false
		}
		for _, option := range field.Options {
			if option.Value == selected {
				return true
			}
		}
		return false
	case FieldList:
		switch value.(type) {
		case []any, []map[string]any:
			return true
		}
		return false
	default:
		_, ok := value.(string)
		return ok
	}
}
