package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/stackvm/vm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)

	case vm.Value:
		switch v.Kind() {
		case vm.KindBool:
			b, _ := v.AsBool()
			return starlark.Bool(b)
		case vm.KindInt:
			i, _ := v.AsInt()
			return starlark.MakeInt64(i)
		case vm.KindSymbol:
			s, _ := v.AsSymbol()
			return starlark.String(s)
		}
		return starlark.None

	case []vm.Value:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case vm.Frame:
		d := starlark.NewDict(3)
		d.SetKey(starlark.String("proc"), starlark.String(v.Name()))
		d.SetKey(starlark.String("pc"), starlark.MakeInt(v.PC))
		d.SetKey(starlark.String("base"), starlark.MakeInt(v.Base))
		return d

	case []vm.Frame:
		elems := make([]starlark.Value, len(v))
		for i, f := range v {
			elems[i] = toStarlarkValue(f)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
