// Package messages keeps validation message templates outside code.
//
// A Catalog maps rule names (Required, LengthLessThan, ...) to templates with
// %{name} placeholders; %{field} is always the field name. Catalogs load from
// flat YAML or JSON files and merge over the built-in English defaults, so a
// file only needs the templates it changes.
//
//	catalog, err := messages.FromEnv() // MESSAGES_PATH=messages.yaml
//	if err != nil {
//		return err
//	}
//
//	name := validator.IsRequired(catalog.Config(messages.Required, "Name", nil))
//
// Substitution is plain string interpolation; there is no pluralisation or
// locale selection.
package messages
