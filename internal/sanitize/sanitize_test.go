package sanitize

import (
	"encoding/json"
	"testing"
)

func mustJSON(t *testing.T, v Value) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	return string(data)
}

func TestSanitizeDropsEmptyLeaves(t *testing.T) {
	in := MapOf(NewMap().
		Set("zona", String("Norte")).
		Set("vacio", String("")).
		Set("blanco", String("   ")).
		Set("nulo", Null()).
		Set("cero", Number(0)).
		Set("falso", Bool(false)))

	out := Sanitize(in)

	if !out.Has("zona") || !out.Has("cero") || !out.Has("falso") {
		t.Fatalf("non-empty leaves were dropped: keys=%v", out.Keys())
	}
	for _, key := range []string{"vacio", "blanco", "nulo"} {
		if out.Has(key) {
			t.Fatalf("empty leaf %q survived", key)
		}
	}
}

func TestSanitizeDropsEmptyContainers(t *testing.T) {
	in := MapOf(NewMap().
		Set("novedad", String("Obstrucción de vía")).
		Set("lista_vacia", List()).
		Set("lista_de_vacios", List(String(""), Null())).
		Set("mapa_vacio", MapOf(NewMap())).
		Set("mapa_de_vacios", MapOf(NewMap().Set("a", String("")).Set("b", Null()))).
		Set("anidado", MapOf(NewMap().
			Set("vivo", String("x")).
			Set("muerto", String("")))))

	out := Sanitize(in)

	want := `{"novedad":"Obstrucción de vía","anidado":{"vivo":"x"}}`
	if got := mustJSON(t, MapOf(out)); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestSanitizeListOfMaps(t *testing.T) {
	in := MapOf(NewMap().Set("items", List(
		MapOf(NewMap().Set("nombre", String("primero")).Set("nota", String(""))),
		MapOf(NewMap().Set("nombre", String("")).Set("nota", Null())),
		MapOf(NewMap().Set("nombre", String("tercero"))),
	)))

	out := Sanitize(in)

	items, ok := out.Get("items")
	if !ok || items.Kind() != KindList {
		t.Fatalf("items list missing: %v", out.Keys())
	}
	if len(items.ListVal()) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(items.ListVal()))
	}
	first, _ := items.ListVal()[0].MapVal().Get("nombre")
	if first.StringVal() != "primero" {
		t.Fatalf("element order not preserved: %v", first.StringVal())
	}
}

func TestSanitizeIsIdempotent(t *testing.T) {
	raw := []byte(`{
		"zona": "Norte",
		"direccion": "",
		"detalle": {"a": null, "b": "x", "c": {"d": ""}},
		"fotos": ["uno", "", "dos"],
		"numeros": [0, 1]
	}`)

	v, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	once := Sanitize(v)
	twice := Sanitize(MapOf(once))

	a, b := mustJSON(t, MapOf(once)), mustJSON(t, MapOf(twice))
	if a != b {
		t.Fatalf("sanitize not idempotent:\n once: %s\ntwice: %s", a, b)
	}
}

func TestSanitizeTopLevelAlwaysMap(t *testing.T) {
	for _, v := range []Value{Null(), String(""), List(), String("scalar")} {
		out := Sanitize(v)
		if out == nil {
			t.Fatalf("expected a map for %v", v.Kind())
		}
		if v.Kind() != KindMap && out.Len() != 0 {
			t.Fatalf("non-map input should sanitize to an empty map")
		}
	}
}

func TestSanitizePreservesKeyOrder(t *testing.T) {
	in := MapOf(NewMap().
		Set("c", String("3")).
		Set("a", String("1")).
		Set("vacio", String("")).
		Set("b", String("2")))

	out := Sanitize(in)

	keys := out.Keys()
	want := []string{"c", "a", "b"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestFromJSONPreservesOrderAndPrecision(t *testing.T) {
	raw := []byte(`{"lng":-79.922356,"lat":-2.170998,"z":1}`)
	v, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	if got := mustJSON(t, v); got != `{"lng":-79.922356,"lat":-2.170998,"z":1}` {
		t.Fatalf("round trip changed the document: %s", got)
	}
}
