// Package contact construye enlaces de contacto hacia los prestataires.
package contact

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const whatsAppBase = "https://wa.me/"

// WhatsAppNumber deja solo los dígitos que wa.me acepta: sin espacios, puntos, guiones ni '+'.
func WhatsAppNumber(telephone string) string {
	var b strings.Builder
	for _, r := range telephone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppMessage mensaje de primer contacto que se precarga en la conversación.
func WhatsAppMessage(nom, domaine string) string {
	return fmt.Sprintf("Bonjour %s !\n\nJe suis intéressé(e) par vos services en %s.\n\n"+
		"Pouvez-vous me donner plus d'informations sur vos prestations et tarifs ?\n\nMerci !", nom, domaine)
}

// WhatsAppURL devuelve el deep link wa.me; cadena vacía si el teléfono no contiene dígitos.
func WhatsAppURL(telephone, nom, domaine string) string {
	number := WhatsAppNumber(telephone)
	if number == "" {
		return ""
	}
	return whatsAppBase + number + "?text=" + url.QueryEscape(WhatsAppMessage(nom, domaine))
}
