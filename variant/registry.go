package variant

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Registry holds the variant definitions and the detection order.
type Registry struct {
	variants map[string]*Variant
	byAlias  map[string]*Variant
	order    []*Variant
}

var (
	buildOnce sync.Once
	registry  *Registry
	buildErr  error
)

// Build returns the process-wide registry, constructing and validating
// it on first use.
func Build() (*Registry, error) {
	buildOnce.Do(func() {
		registry, buildErr = newRegistry(variantDefs())
	})
	return registry, buildErr
}

// GetVariant returns the variant with the given name from the
// process-wide registry.
func GetVariant(name string) (*Variant, error) {
	reg, err := Build()
	if err != nil {
		return nil, err
	}
	return reg.Get(name)
}

// GetByAlias returns the variant with the given builder alias from the
// process-wide registry.
func GetByAlias(alias string) (*Variant, error) {
	reg, err := Build()
	if err != nil {
		return nil, err
	}
	return reg.ByAlias(alias)
}

func newRegistry(defs []*Variant) (*Registry, error) {
	reg := &Registry{
		variants: make(map[string]*Variant, len(defs)),
		byAlias:  make(map[string]*Variant, len(defs)),
		order:    make([]*Variant, 0, len(defs)),
	}
	validate := validator.New()
	for _, vnt := range defs {
		if err := validate.Struct(vnt); err != nil {
			return nil, fmt.Errorf("invalid definition for %s: %w", vnt.Name, err)
		}
		if (vnt.Repo.Deb != nil) == (vnt.Repo.Yum != nil) {
			return nil, fmt.Errorf("%s: exactly one of the Deb and Yum repository definitions must be set", vnt.Name)
		}
		if vnt.Parent != "" {
			if _, ok := reg.variants[vnt.Parent]; !ok {
				return nil, fmt.Errorf("%s: unknown parent variant %s", vnt.Name, vnt.Parent)
			}
		}
		if _, ok := reg.variants[vnt.Name]; ok {
			return nil, fmt.Errorf("duplicate variant name %s", vnt.Name)
		}
		if _, ok := reg.byAlias[vnt.Builder.Alias]; ok {
			return nil, fmt.Errorf("%s: duplicate builder alias %s", vnt.Name, vnt.Builder.Alias)
		}
		vnt.commandIndex = commandIndexFor(&vnt.Commands)
		reg.variants[vnt.Name] = vnt
		reg.byAlias[vnt.Builder.Alias] = vnt
	}

	// The detection order is the reverse of the definition order: the
	// rebuild and derivative distributions carry release files that the
	// generic patterns would also match, so they must be examined first.
	for idx := len(defs) - 1; idx >= 0; idx-- {
		reg.order = append(reg.order, defs[idx])
	}
	return reg, nil
}

// Get returns the variant with the given name.
func (r *Registry) Get(name string) (*Variant, error) {
	vnt, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return vnt, nil
}

// ByAlias returns the variant with the given builder alias.
func (r *Registry) ByAlias(alias string) (*Variant, error) {
	vnt, ok := r.byAlias[alias]
	if !ok {
		return nil, fmt.Errorf("%w: no variant with builder alias %q", ErrUnknownVariant, alias)
	}
	return vnt, nil
}

// DetectOrder returns the variants in detection priority order, most
// specific first. The returned slice must not be modified.
func (r *Registry) DetectOrder() []*Variant {
	return r.order
}

// Names returns the variant names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func debCommands() Commands {
	return Commands{
		Package: CommandsPackage{
			UpdateDB: []string{"apt-get", "-q", "-y", "update"},
			Install: []string{
				"env", "DEBIAN_FRONTEND=noninteractive",
				"apt-get", "-q", "-y", "--no-install-recommends", "install", "--",
			},
			ListAll: []string{
				"dpkg-query", "-W", "-f",
				`${Package}\t${Version}\t${Architecture}\t${db:Status-Abbrev}\n`,
				"--",
			},
			Purge: []string{
				"env", "DEBIAN_FRONTEND=noninteractive",
				"apt-get", "-q", "-y", "purge", "--",
			},
			Remove: []string{
				"env", "DEBIAN_FRONTEND=noninteractive",
				"apt-get", "-q", "-y", "remove", "--",
			},
			RemoveImpl: []string{
				"env", "DEBIAN_FRONTEND=noninteractive",
				"dpkg", "-r", "--",
			},
		},
		PkgFile: CommandsPkgFile{
			DepQuery: []string{
				"sh", "-c",
				`dpkg-deb -f -- "$pkg" "Depends" | sed -e "s/ *, */,/g" | tr "," "\n"`,
			},
			Install: []string{
				"sh", "-c",
				"env DEBIAN_FRONTEND=noninteractive apt-get install " +
					"--no-install-recommends --reinstall -y " +
					"-o DPkg::Options::=--force-confnew " +
					"-- $packages",
			},
		},
	}
}

// elCommands returns the package management commands shared by the
// RPM-based variants; only the install commands differ among them.
func elCommands(install, pkgFileInstall []string) Commands {
	return Commands{
		Package: CommandsPackage{
			UpdateDB: []string{"true"},
			Install:  install,
			ListAll: []string{
				"rpm", "-qa", "--qf",
				`%{Name}\t%{EVR}\t%{Arch}\tii\n`,
				"--",
			},
			Purge:      []string{"yum", "remove", "-q", "-y", "--"},
			Remove:     []string{"yum", "remove", "-q", "-y", "--"},
			RemoveImpl: []string{"rpm", "-e", "--"},
		},
		PkgFile: CommandsPkgFile{
			DepQuery: []string{"sh", "-c", `rpm -qpR -- "$pkg"`},
			Install:  pkgFileInstall,
		},
	}
}

func dnfInstall(repos ...string) []string {
	cmd := []string{"dnf", "--disablerepo=*"}
	for _, repo := range repos {
		cmd = append(cmd, "--enablerepo="+repo)
	}
	return append(cmd, "install", "-q", "-y", "--")
}

// elPkgFileInstall builds the install-from-package-files script: already
// installed packages must be reinstalled instead.
func elPkgFileInstall(tool, repos string) []string {
	script := fmt.Sprintf(`
unset to_install to_reinstall
for f in $packages; do
    package="$(rpm -qp "$f")"
    if rpm -q -- "$package"; then
        to_reinstall="$to_reinstall ./$f"
    else
        to_install="$to_install ./$f"
    fi
done

if [ -n "$to_install" ]; then
    %[1]s install -y --disablerepo='*' --enablerepo=%[2]s --setopt=localpkg_gpgcheck=0 -- $to_install
fi
if [ -n "$to_reinstall" ]; then
    %[1]s reinstall -y --disablerepo='*' --enablerepo=%[2]s --setopt=localpkg_gpgcheck=0 -- $to_reinstall
fi
`, tool, repos)
	return []string{"sh", "-c", script}
}

func debRepo(vendor, codename string, reqPackages ...string) Repo {
	return Repo{Deb: &DebRepo{
		Codename:    codename,
		Vendor:      vendor,
		Sources:     "debian/repo/storpool.sources",
		Keyring:     "debian/repo/storpool-keyring.gpg",
		ReqPackages: reqPackages,
	}}
}

func yumRepo() Repo {
	return Repo{Yum: &YumRepo{
		YumDef:  "redhat/repo/storpool-centos.repo",
		Keyring: "redhat/repo/RPM-GPG-KEY-StorPool",
	}}
}

func withPackages(base, overrides map[string]string) map[string]string {
	res := make(map[string]string, len(base))
	for name, value := range base {
		res[name] = value
	}
	for name, value := range overrides {
		res[name] = value
	}
	return res
}

func debPackages() map[string]string {
	return map[string]string{
		"BINDINGS_PYTHON":            "python3",
		"BINDINGS_PYTHON_CONFGET":    "python3-confget",
		"BINDINGS_PYTHON_SIMPLEJSON": "python3-simplejson",
		"CGROUP":                     "cgroup-tools",
		"CPUPOWER":                   "linux-cpupower",
		"LIBSSL":                     "libssl1.1",
		"MCELOG":                     "mcelog",
	}
}

func debPython2Packages(base map[string]string) map[string]string {
	return withPackages(base, map[string]string{
		"BINDINGS_PYTHON":            "python",
		"BINDINGS_PYTHON_CONFGET":    "python-confget",
		"BINDINGS_PYTHON_SIMPLEJSON": "python-simplejson",
	})
}

func elPackages() map[string]string {
	return map[string]string{
		"KMOD":                 "kmod",
		"LIBCGROUP":            "libcgroup-tools",
		"LIBUDEV":              "systemd-libs",
		"OPENSSL":              "openssl-libs",
		"PERL_AUTODIE":         "perl-autodie",
		"PERL_FILE_PATH":       "perl-File-Path",
		"PERL_LWP_PROTO_HTTPS": "perl-LWP-Protocol-https",
		"PERL_SYS_SYSLOG":      "perl-Sys-Syslog",
		"PYTHON_SIMPLEJSON":    "python2-simplejson",
		"PROCPS":               "procps-ng",
		"UDEV":                 "systemd",
	}
}

// variantDefs returns the variant definitions, most generic first; the
// detection order is the reverse of this.
func variantDefs() []*Variant {
	ubuntuPackages := withPackages(debPackages(), map[string]string{
		"CPUPOWER": "linux-tools-generic",
		"MCELOG":   "bash",
	})
	alma8Commands := elCommands(
		dnfInstall("baseos", "powertools", "storpool-contrib"),
		elPkgFileInstall("dnf", "baseos,storpool-contrib,powertools"),
	)
	centos7Commands := elCommands(
		[]string{
			"yum", "--disablerepo=*",
			"--enablerepo=base", "--enablerepo=updates", "--enablerepo=storpool-contrib",
			"install", "-q", "-y",
		},
		elPkgFileInstall("yum", "base,updates,storpool-contrib"),
	)

	return []*Variant{
		{
			Name:   "DEBIAN12",
			Descr:  "Debian 12.x (bookworm/unstable)",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Debian\s+GNU/Linux\s+(?:bookworm|12)(?:\s|/)`),
				OSID:           "debian",
				OSVersionRegex: pattern(`^12$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "3.9",
			Repo:            debRepo("debian", "unstable", "ca-certificates"),
			Package:         debPackages(),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "debian12",
				BaseImage:     "debian:unstable",
				Branch:        "debian/unstable",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "DEBIAN11",
			Descr:  "Debian 11.x (bullseye)",
			Parent: "DEBIAN12",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Debian\s+GNU/Linux\s+(?:bullseye|11)(?:\s|/)`),
				OSID:           "debian",
				OSVersionRegex: pattern(`^11$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "3.9",
			Repo:            debRepo("debian", "bullseye", "ca-certificates"),
			Package:         debPackages(),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "debian11",
				BaseImage:     "debian:bullseye",
				Branch:        "debian/bullseye",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "DEBIAN10",
			Descr:  "Debian 10.x (buster)",
			Parent: "DEBIAN11",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Debian\s+GNU/Linux\s+(?:buster|10)(?:\s|/)`),
				OSID:           "debian",
				OSVersionRegex: pattern(`^10$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "2.7",
			Repo:            debRepo("debian", "buster", "ca-certificates"),
			Package:         debPython2Packages(debPackages()),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "debian10",
				BaseImage:     "debian:buster",
				Branch:        "debian/buster",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "DEBIAN9",
			Descr:  "Debian 9.x (stretch)",
			Parent: "DEBIAN10",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Debian\s+GNU/Linux\s+(?:stretch|9)(?:\s|/)`),
				OSID:           "debian",
				OSVersionRegex: pattern(`^9$`),
			},
			Commands:     debCommands(),
			MinSysPython: "2.7",
			Repo: debRepo("debian", "stretch",
				"apt-transport-https", "ca-certificates"),
			Package:         debPython2Packages(debPackages()),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "debian9",
				BaseImage:     "debian:stretch",
				Branch:        "debian/stretch",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "UBUNTU2204",
			Descr:  "Ubuntu 22.04 LTS (Jammy Jellyfish)",
			Parent: "DEBIAN12",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*(?:Ubuntu\s+22\.04|Mint\s+21)`),
				OSID:           "ubuntu",
				OSVersionRegex: pattern(`^22\.04$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "3.9",
			Repo:            debRepo("ubuntu", "jammy", "ca-certificates"),
			Package:         ubuntuPackages,
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "ubuntu-22.04",
				BaseImage:     "ubuntu:jammy",
				Branch:        "ubuntu/jammy",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "UBUNTU2110",
			Descr:  "Ubuntu 21.10 LTS (Impish Indri)",
			Parent: "UBUNTU2204",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Ubuntu\s+21\.10`),
				OSID:           "ubuntu",
				OSVersionRegex: pattern(`^21\.10$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "3.9",
			Repo:            debRepo("ubuntu", "impish", "ca-certificates"),
			Package:         ubuntuPackages,
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "ubuntu-21.10",
				BaseImage:     "ubuntu:impish",
				Branch:        "ubuntu/impish",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "UBUNTU2004",
			Descr:  "Ubuntu 20.04 LTS (Focal Fossa)",
			Parent: "UBUNTU2110",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*(?:Ubuntu\s+20\.04|Mint\s+20)`),
				OSID:           "ubuntu",
				OSVersionRegex: pattern(`^20\.04$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "3.8",
			Repo:            debRepo("ubuntu", "focal", "ca-certificates"),
			Package:         ubuntuPackages,
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "ubuntu-20.04",
				BaseImage:     "ubuntu:focal",
				Branch:        "ubuntu/focal",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "UBUNTU1804",
			Descr:  "Ubuntu 18.04 LTS (Bionic Beaver)",
			Parent: "UBUNTU2004",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Ubuntu\s+18\.04`),
				OSID:           "ubuntu",
				OSVersionRegex: pattern(`^18\.04$`),
			},
			Commands:        debCommands(),
			MinSysPython:    "2.7",
			Repo:            debRepo("ubuntu", "bionic", "ca-certificates"),
			Package:         debPython2Packages(ubuntuPackages),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "ubuntu-18.04",
				BaseImage:     "ubuntu:bionic",
				Branch:        "ubuntu/bionic",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "UBUNTU1604",
			Descr:  "Ubuntu 16.04 LTS (Xenial Xerus)",
			Parent: "UBUNTU1804",
			Family: "debian",
			Detect: DetectSpec{
				Filename:       "/etc/os-release",
				Regex:          pattern(`^PRETTY_NAME=.*Ubuntu\s+16\.04`),
				OSID:           "ubuntu",
				OSVersionRegex: pattern(`^16\.04$`),
			},
			Commands:     debCommands(),
			MinSysPython: "2.7",
			Repo: debRepo("ubuntu", "xenial",
				"apt-transport-https", "ca-certificates"),
			Package: withPackages(debPython2Packages(ubuntuPackages), map[string]string{
				"LIBSSL": "libssl1.0.0",
				"MCELOG": "mcelog",
			}),
			SystemdLib:      "lib/systemd/system",
			FileExt:         "deb",
			InitramfsFlavor: "update-initramfs",
			Builder: Builder{
				Alias:         "ubuntu-16.04",
				BaseImage:     "ubuntu:xenial",
				Branch:        "ubuntu/xenial",
				KernelPackage: "linux-headers",
				Utf8Locale:    "C.UTF-8",
			},
		},
		{
			Name:   "ALMA9",
			Descr:  "AlmaLinux 9.x",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^AlmaLinux\s.*\s9\.[0-9]`),
				OSID:           "alma",
				OSVersionRegex: pattern(`^9(?:$|\.[0-9])`),
			},
			Commands: elCommands(
				dnfInstall("baseos", "storpool-contrib"),
				elPkgFileInstall("dnf", "baseos,storpool-contrib"),
			),
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "alma9",
				BaseImage:     "almalinux:9",
				Branch:        "centos/9",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
		{
			Name:   "ALMA8",
			Descr:  "AlmaLinux 8.x",
			Parent: "ALMA9",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^AlmaLinux\s.*\s8\.(?:[4-9]|[1-9][0-9])`),
				OSID:           "alma",
				OSVersionRegex: pattern(`^8(?:$|\.[4-9]|\.[1-9][0-9])`),
			},
			Commands:        alma8Commands,
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "alma8",
				BaseImage:     "almalinux:8",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
		{
			Name:   "CENTOS8",
			Descr:  "CentOS 8.x",
			Parent: "ALMA8",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^CentOS\s.*\s8\.(?:[3-9]|[12][0-9])`),
				OSID:           "centos",
				OSVersionRegex: pattern(`^8(?:$|\.[4-9]|\.[1-9][0-9])`),
			},
			Commands:        alma8Commands,
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "centos8",
				BaseImage:     "centos:8",
				Branch:        "centos/8",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
		{
			Name:   "CENTOS7",
			Descr:  "CentOS 7.x",
			Parent: "CENTOS8",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^(?:CentOS|Virtuozzo)\s.*\s7\.`),
				OSID:           "centos",
				OSVersionRegex: pattern(`^7(?:$|\.[0-9])`),
			},
			Commands:        centos7Commands,
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "centos7",
				BaseImage:     "centos:7",
				Branch:        "centos/7",
				KernelPackage: "kernel",
				Utf8Locale:    "C",
			},
		},
		{
			Name:   "CENTOS6",
			Descr:  "CentOS 6.x",
			Parent: "CENTOS7",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^CentOS\s.*\s6\.`),
				OSID:           "centos",
				OSVersionRegex: pattern(`^6(?:$|\.[0-9])`),
			},
			Commands:     centos7Commands,
			MinSysPython: "2.6",
			Repo:         yumRepo(),
			Package: map[string]string{
				"KMOD":                 "module-init-tools",
				"LIBCGROUP":            "libcgroup",
				"LIBUDEV":              "libudev",
				"OPENSSL":              "openssl",
				"PERL_AUTODIE":         "perl",
				"PERL_FILE_PATH":       "perl",
				"PERL_LWP_PROTO_HTTPS": "perl",
				"PERL_SYS_SYSLOG":      "perl",
				"PYTHON_SIMPLEJSON":    "python-simplejson",
				"PROCPS":               "procps",
				"UDEV":                 "udev",
			},
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "centos6",
				BaseImage:     "centos:6",
				Branch:        "centos/6",
				KernelPackage: "kernel",
				Utf8Locale:    "C",
			},
		},
		{
			Name:   "ORACLE7",
			Descr:  "Oracle Linux 7.x",
			Parent: "CENTOS7",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/oracle-release",
				Regex:          pattern(`^Oracle\s+Linux\s.*\s7\.`),
				OSID:           "ol",
				OSVersionRegex: pattern(`^7(?:$|\.[0-9])`),
			},
			Commands:        centos7Commands,
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "oracle7",
				BaseImage:     "IGNORE",
				KernelPackage: "kernel",
				Utf8Locale:    "C",
			},
		},
		{
			Name:   "RHEL8",
			Descr:  "RedHat Enterprise Linux 8.x",
			Parent: "CENTOS8",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^Red\s+Hat\s+Enterprise\s+Linux\s.*\s8\.(?:[4-9]|[1-9][0-9])`),
				OSID:           "rhel",
				OSVersionRegex: pattern(`^8(?:$|\.[4-9]|\.[1-9][0-9])`),
			},
			Commands: elCommands(
				dnfInstall("baseos", "storpool-contrib",
					"codeready-builder-for-rhel-8-x86_64-rpms"),
				elPkgFileInstall("dnf",
					"baseos,storpool-contrib,codeready-builder-for-rhel-8-x86_64-rpms"),
			),
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "rhel8",
				BaseImage:     "redhat/ubi8:reg",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
		{
			Name:   "ROCKY9",
			Descr:  "Rocky Linux 9.x",
			Parent: "ALMA9",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^Rocky\s+Linux\s.*\s9\.[0-9]`),
				OSID:           "rocky",
				OSVersionRegex: pattern(`^9(?:$|\.[0-9])`),
			},
			Commands: elCommands(
				dnfInstall("baseos", "storpool-contrib"),
				elPkgFileInstall("dnf", "baseos,storpool-contrib"),
			),
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "rocky9",
				BaseImage:     "rockylinux:9",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
		{
			Name:   "ROCKY8",
			Descr:  "Rocky Linux 8.x",
			Parent: "CENTOS8",
			Family: "redhat",
			Detect: DetectSpec{
				Filename:       "/etc/redhat-release",
				Regex:          pattern(`^Rocky\s+Linux\s.*\s8\.(?:[4-9]|[1-9][0-9])`),
				OSID:           "rocky",
				OSVersionRegex: pattern(`^8(?:$|\.[4-9]|\.[1-9][0-9])`),
			},
			Commands:        alma8Commands,
			MinSysPython:    "2.7",
			Repo:            yumRepo(),
			Package:         elPackages(),
			SystemdLib:      "usr/lib/systemd/system",
			FileExt:         "rpm",
			InitramfsFlavor: "mkinitrd",
			Builder: Builder{
				Alias:         "rocky8",
				BaseImage:     "rockylinux:8",
				KernelPackage: "kernel-core",
				Utf8Locale:    "C.utf8",
			},
		},
	}
}
