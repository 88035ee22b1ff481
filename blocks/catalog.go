package blocks

// catalog declares the built-in block types and their variants. Declaration
// order drives the two-step type/variant picker in the admin UI, so keep the
// ordering intentional.
func catalog() []BlockTypeDefinition {
	return []BlockTypeDefinition{
		heroDefinition(),
		aboutDefinition(),
		featuresDefinition(),
		formDefinition(),
		mediaDefinition(),
		ctaDefinition(),
		projectDefinition(),
	}
}

func heroDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockHero,
		Label:          "Hero",
		Description:    "Full-width opening section",
		DefaultVariant: "hero-minimal-text",
		Variants: []VariantSchema{
			{
				ID:   "hero-minimal-text",
				Type: BlockHero,
				Name: "Minimal Text",
				Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText, Label: "Title", DefaultValue: "Simple. Powerful. Effective."},
					{Name: "subtitle", Kind: FieldText, Label: "Subtitle"},
					{Name: "backgroundColor", Kind: FieldColor, Label: "Background color", DefaultValue: "#000000"},
					{Name: "textColor", Kind: FieldColor, Label: "Text color", DefaultValue: "#ffffff"},
					{
						Name: "textAlign", Kind: FieldSelect, Label: "Text alignment", DefaultValue: "center",
						Options: []SelectOption{
							{Label: "Left", Value: "left"},
							{Label: "Center", Value: "center"},
							{Label: "Right", Value: "right"},
						},
					},
				},
			},
			{
				ID:   "hero-gallery",
				Type: BlockHero,
				Name: "Gallery",
				Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText, Label: "Title"},
					{Name: "subtitle", Kind: FieldText, Label: "Subtitle"},
					{Name: "autoplay", Kind: FieldSwitch, Label: "Autoplay", DefaultValue: true},
					{
						Name: "slides", Kind: FieldList, Label: "Slides", ItemLabel: "Slide",
						MinItems: 1, MaxItems: 8,
						Fields: []FieldDefinition{
							{Name: "image", Kind: FieldImage, Label: "Image"},
							{Name: "caption", Kind: FieldText, Label: "Caption"},
						},
					},
				},
			},
			{
				ID:   "hero-split",
				Type: BlockHero,
				Name: "Split",
				Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText, Label: "Title"},
					{Name: "description", Kind: FieldTextarea, Label: "Description"},
					{Name: "image", Kind: FieldImage, Label: "Image"},
					{Name: "ctaLabel", Kind: FieldText, Label: "CTA label"},
					{Name: "ctaUrl", Kind: FieldURL, Label: "CTA URL"},
				},
			},
		},
	}
}

func aboutDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockAbout,
		Label:          "About",
		Description:    "Company and team sections",
		DefaultVariant: "about-story",
		Variants: []VariantSchema{
			{
				ID:   "about-story",
				Type: BlockAbout,
				Name: "Story",
				Fields: []FieldDefinition{
					{Name: "sectionTitle", Kind: FieldText, Label: "Section title", DefaultValue: "Our Story"},
					{Name: "body", Kind: FieldTextarea, Label: "Body"},
					{Name: "image", Kind: FieldImage, Label: "Image"},
				},
			},
			{
				ID:   "about-team",
				Type: BlockAbout,
				Name: "Team",
				Fields: []FieldDefinition{
					{Name: "sectionTitle", Kind: FieldText, Label: "Section title", DefaultValue: "Our Team"},
					{Name: "subtitle", Kind: FieldText, Label: "Subtitle", DefaultValue: "Meet the experts"},
					{
						Name: "members", Kind: FieldList, Label: "Members", ItemLabel: "Member",
						MinItems: 1, MaxItems: 12,
						Fields: []FieldDefinition{
							{Name: "name", Kind: FieldText, Label: "Name"},
							{Name: "role", Kind: FieldText, Label: "Role"},
							{Name: "photo", Kind: FieldImage, Label: "Photo"},
							{Name: "bio", Kind: FieldTextarea, Label: "Bio"},
						},
					},
				},
			},
		},
	}
}

func featuresDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockFeatures,
		Label:          "Features",
		DefaultVariant: "features-grid",
		Variants: []VariantSchema{
			{
				ID:   "features-grid",
				Type: BlockFeatures,
				Name: "Grid",
				Fields: []FieldDefinition{
					{Name: "sectionTitle", Kind: FieldText, Label: "Section title"},
					{Name: "columns", Kind: FieldNumber, Label: "Columns", DefaultValue: 3},
					{
						Name: "items", Kind: FieldList, Label: "Items", ItemLabel: "Feature",
						MinItems: 1, MaxItems: 9,
						Fields: []FieldDefinition{
							{Name: "icon", Kind: FieldImage, Label: "Icon"},
							{Name: "title", Kind: FieldText, Label: "Title"},
							{Name: "description", Kind: FieldTextarea, Label: "Description"},
						},
					},
				},
			},
		},
	}
}

func formDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockForm,
		Label:          "Form",
		DefaultVariant: "form-contact",
		Variants: []VariantSchema{
			{
				ID:   "form-contact",
				Type: BlockForm,
				Name: "Contact",
				Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText, Label: "Title", DefaultValue: "Get in touch"},
					{Name: "submitLabel", Kind: FieldText, Label: "Submit label", DefaultValue: "Send"},
					{Name: "successMessage", Kind: FieldText, Label: "Success message"},
					{Name: "showPhone", Kind: FieldSwitch, Label: "Show phone field"},
				},
			},
		},
	}
}

func mediaDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockMedia,
		Label:          "Media",
		DefaultVariant: "media-cards",
		Variants: []VariantSchema{
			{
				ID:   "media-cards",
				Type: BlockMedia,
				Name: "Cards",
				Fields: []FieldDefinition{
					{Name: "sectionTitle", Kind: FieldText, Label: "Section title"},
					{Name: "collection", Kind: FieldCollectionReference, Label: "Collection"},
					{
						Name: "cards", Kind: FieldList, Label: "Cards", ItemLabel: "Card",
						MaxItems: 6,
						Fields: []FieldDefinition{
							{Name: "media", Kind: FieldMedia, Label: "Media"},
							{Name: "title", Kind: FieldText, Label: "Title"},
							{Name: "link", Kind: FieldURL, Label: "Link"},
						},
					},
				},
			},
		},
	}
}

func ctaDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockCTA,
		Label:          "Call to Action",
		DefaultVariant: "cta-banner",
		Variants: []VariantSchema{
			{
				ID:   "cta-banner",
				Type: BlockCTA,
				Name: "Banner",
				Fields: []FieldDefinition{
					{Name: "headline", Kind: FieldText, Label: "Headline"},
					{Name: "buttonLabel", Kind: FieldText, Label: "Button label", DefaultValue: "Learn more"},
					{Name: "buttonUrl", Kind: FieldURL, Label: "Button URL"},
					{Name: "backgroundColor", Kind: FieldColor, Label: "Background color", DefaultValue: "#1a1a2e"},
				},
			},
		},
	}
}

func projectDefinition() BlockTypeDefinition {
	return BlockTypeDefinition{
		Type:           BlockProject,
		Label:          "Project",
		DefaultVariant: "project-hero",
		Variants: []VariantSchema{
			{
				ID:   "project-hero",
				Type: BlockProject,
				Name: "Hero",
				Fields: []FieldDefinition{
					{Name: "title", Kind: FieldText, Label: "Title"},
					{Name: "summary", Kind: FieldTextarea, Label: "Summary"},
					{Name: "cover", Kind: FieldImage, Label: "Cover"},
					{Name: "video", Kind: FieldVideo, Label: "Video"},
					{Name: "year", Kind: FieldNumber, Label: "Year"},
				},
			},
		},
	}
}
