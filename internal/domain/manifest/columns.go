package manifest

import "strings"

// Field is a product attribute a manifest column can map onto.
type Field string

const (
	FieldLot         Field = "lot_number"
	FieldPallet      Field = "pallet_number"
	FieldProductName Field = "product_name"
	FieldEAN         Field = "ean_code"
	FieldASIN        Field = "asin_code"
	FieldQuantity    Field = "quantity"
	FieldUnit        Field = "unit"
	FieldPrice       Field = "price"
	FieldValue       Field = "value"
	FieldCurrency    Field = "currency"
)

// fieldOrder is the mapping priority; a column is claimed by the first field
// whose aliases match it.
var fieldOrder = []Field{
	FieldLot,
	FieldPallet,
	FieldProductName,
	FieldEAN,
	FieldASIN,
	FieldQuantity,
	FieldUnit,
	FieldPrice,
	FieldValue,
	FieldCurrency,
}

var aliases = map[Field][]string{
	FieldLot:         {"nr lot", "nr_lot", "nr-lot", "lot", "lot number", "lot_number", "lot-number", "numer partii", "numer_partii", "partia"},
	FieldPallet:      {"nr palety", "nr_palety", "nr-palety", "paleta", "pallet", "pallet number", "pallet_number", "pallet-number", "numer palety"},
	FieldProductName: {"item desc", "item_desc", "nazwa", "nazwa produktu", "produkt", "product", "product name", "product_name", "description", "desc"},
	FieldEAN:         {"ean", "kod ean", "kod_ean", "ean code", "ean_code", "kod", "code", "barcode", "bar code", "bar_code"},
	FieldASIN:        {"asin", "kod asin", "kod_asin", "asin code", "asin_code"},
	FieldQuantity:    {"ilość", "ilosc", "ilośc", "ilosć", "qty", "quantity", "amount", "liczba sztuk", "liczba_sztuk"},
	FieldUnit:        {"jednostka", "jm", "j.m.", "unit", "measure", "unit of measure", "uom"},
	FieldPrice: {"cena", "price", "unit price", "unit_price", "cena jednostkowa", "cena_jednostkowa", "koszt", "cost",
		"preis", "prix", "precio", "prezzo", "einzelpreis", "unit cost", "cost per unit", "price per unit", "price per item"},
	FieldValue: {"wartość", "wartosc", "value", "total", "suma", "total value", "total_value", "wert", "valeur", "valor",
		"valore", "gesamtwert", "total cost", "total price", "sum", "amount", "line total", "line value", "line amount"},
	FieldCurrency: {"waluta", "currency", "curr", "waluty", "währung", "monnaie", "moneda", "valuta"},
}

var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[Field]map[string]struct{} {
	idx := make(map[Field]map[string]struct{}, len(aliases))
	for f, names := range aliases {
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[normalizeHeader(n)] = struct{}{}
		}
		idx[f] = set
	}
	return idx
}

// normalizeHeader lower-cases a header and drops its spaces.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", ""))
}

// mapColumns assigns headers to fields. The result maps each field to the
// index of its column.
func mapColumns(headers []string) map[Field]int {
	claimed := make(map[int]bool, len(headers))
	mapped := make(map[Field]int)

	for _, f := range fieldOrder {
		names := aliasIndex[f]
		for i, h := range headers {
			if claimed[i] {
				continue
			}
			if _, ok := names[normalizeHeader(h)]; ok {
				mapped[f] = i
				claimed[i] = true
				break
			}
		}
	}
	return mapped
}
