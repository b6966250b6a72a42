// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdfxref

// decodeStream implements the §4.3 contract: walk dictEntries pairwise for
// /Length and /Filter, truncate raw to the declared length when shorter,
// build the filter-name list (resolving an objref /Filter value through
// §4.2 first), then invoke the Filter collaborator.
func (s *session) decodeStream(dictEntries []RawValue, raw []byte) (DecodedStream, error) {
	if len(raw) == 0 {
		return DecodedStream{Bytes: nil, ResidualFilters: nil}, nil
	}

	var filterNames []string
	data := raw

	for i := 0; i+1 < len(dictEntries); i += 2 {
		key := dictEntries[i]
		val := dictEntries[i+1]
		if key.Tag != TagName {
			continue
		}
		switch key.name() {
		case "Length":
			if n, ok := numericInt64(val); ok && n >= 0 && n < int64(len(data)) {
				data = data[:n]
			}
		case "Filter":
			resolved, err := s.getObjectVal(val)
			if err != nil {
				return DecodedStream{}, err
			}
			switch resolved.Tag {
			case TagName:
				filterNames = append(filterNames, resolved.name())
			case TagArray:
				for _, item := range resolved.Items {
					item, err := s.getObjectVal(item)
					if err != nil {
						return DecodedStream{}, err
					}
					if item.Tag == TagName {
						filterNames = append(filterNames, item.name())
					}
				}
			}
		}
	}

	if len(filterNames) == 0 || s.filter == nil {
		return DecodedStream{Bytes: data, ResidualFilters: nil}, nil
	}

	decoded, err := s.filter.DecodeAll(filterNames, data)
	if err != nil {
		if s.cfg.IgnoreFilterErrors {
			s.log.Debug("stream: suppressing filter error", "filters", filterNames, "err", err)
			return DecodedStream{Bytes: data, ResidualFilters: filterNames}, nil
		}
		return DecodedStream{}, wrapErr("stream", -1, joinErr(ErrFilterError, err))
	}
	return DecodedStream{Bytes: decoded, ResidualFilters: nil}, nil
}

func joinErr(sentinel, cause error) error {
	return &wrappedPair{sentinel: sentinel, cause: cause}
}

type wrappedPair struct {
	sentinel error
	cause    error
}

func (w *wrappedPair) Error() string {
	return w.sentinel.Error() + ": " + w.cause.Error()
}

func (w *wrappedPair) Unwrap() []error {
	return []error{w.sentinel, w.cause}
}
